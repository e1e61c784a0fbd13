package httpserver_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpserver "hotel_reservations/internal/adapters/http_server"
	"hotel_reservations/internal/adapters/observability"
	"hotel_reservations/internal/domain"
)

type fileStore struct{}

func (fileStore) Load(ctx context.Context, c domain.Collection) ([]byte, error) { return nil, nil }
func (fileStore) Save(ctx context.Context, c domain.Collection, b []byte) error { return nil }

type remoteStore struct {
	fileStore
	err error
}

func (s remoteStore) Ping(ctx context.Context) error { return s.err }

func newOps(st domain.Store) *httptest.Server {
	srv := httpserver.New()
	srv.Mount("/metrics", observability.MetricsHandler(observability.InitRegistry()))
	srv.MountHandlers(&httpserver.Health{Store: st, Driver: "test"})
	return httptest.NewServer(srv.Mux())
}

func TestHealthz_OK(t *testing.T) {
	for _, st := range []domain.Store{fileStore{}, remoteStore{}} {
		ts := newOps(st)
		res, err := http.Get(ts.URL + "/healthz")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		var body map[string]string
		_ = json.NewDecoder(res.Body).Decode(&body)
		res.Body.Close()
		ts.Close()
		if res.StatusCode != http.StatusOK || body["status"] != "ok" {
			t.Fatalf("status %d body %+v", res.StatusCode, body)
		}
	}
}

func TestHealthz_StoreDown(t *testing.T) {
	ts := newOps(remoteStore{err: errors.New("connection refused")})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("status %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type %q", ct)
	}
}

func TestMetricsEndpoint_CountsRequests(t *testing.T) {
	ts := newOps(fileStore{})
	defer ts.Close()

	if res, err := http.Get(ts.URL + "/healthz"); err == nil {
		res.Body.Close()
	}
	res, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `hotelres_http_requests_total{method="GET",route="/healthz",status="200"}`) {
		t.Fatalf("healthz request not counted:\n%s", b)
	}
}
