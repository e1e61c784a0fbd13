package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_reservations/internal/domain"
)

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Health reports store reachability. Stores without a remote server are
// always healthy.
type Health struct {
	Store  domain.Store
	Driver string
}

func (s *Server) MountHandlers(h *Health) {
	s.mux.Get("/healthz", h.healthz)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func (h *Health) healthz(w http.ResponseWriter, r *http.Request) {
	if p, ok := h.Store.(domain.Pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("driver", h.Driver).Msg("store ping failed")
			writeProblem(w, http.StatusServiceUnavailable, "Store Unavailable", err.Error())
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok", "store": h.Driver}); err != nil {
		log.Error().Err(err).Msg("failed to write healthz body")
	}
}
