package observability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotel_reservations/internal/domain"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelres", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotelres", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	Operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelres", Name: "operations_total", Help: "Console operations by outcome."},
		[]string{"entity", "op", "result"}, // result: ok|invalid|not_found|conflict|error
	)
	StoreLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotelres", Name: "store_duration_seconds",
			Help:    "Collection load/save duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"driver", "op"},
	)
	StoreErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotelres", Name: "store_errors_total", Help: "Failed collection loads/saves."},
		[]string{"driver", "op"},
	)
	AvailableRooms = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: "hotelres", Name: "hotel_available_rooms", Help: "Available rooms per hotel."},
		[]string{"hotel"},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, Operations, StoreLatency, StoreErrors, AvailableRooms)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveOp(entity, op string, err error) {
	Operations.WithLabelValues(entity, op, Result(err)).Inc()
}

// ObserveStore records one store call started at start.
func ObserveStore(driver, op string, start time.Time, err error) {
	StoreLatency.WithLabelValues(driver, op).Observe(time.Since(start).Seconds())
	if err != nil {
		StoreErrors.WithLabelValues(driver, op).Inc()
	}
}

// SetAvailability replaces the per-hotel gauge with the given hotels.
func SetAvailability(hotels []domain.Hotel) {
	AvailableRooms.Reset()
	for _, h := range hotels {
		AvailableRooms.WithLabelValues(strconv.FormatInt(h.ID, 10)).Set(float64(h.AvailableRooms))
	}
}

// Result maps an error onto the operations_total result label.
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalid):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
