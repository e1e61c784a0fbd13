//go:build integration || !unit

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hotel_reservations/internal/adapters/console"
	server "hotel_reservations/internal/adapters/http_server"
	"hotel_reservations/internal/adapters/observability"
	"hotel_reservations/internal/app"
	"hotel_reservations/internal/clock"
	"hotel_reservations/internal/domain"
	"hotel_reservations/internal/storage/jsonfile"
)

// ---------- helpers ----------
func session(t *testing.T, dir string, lines ...string) string {
	t.Helper()
	st, err := jsonfile.New(dir)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	svc, err := app.Open(context.Background(), st, clock.NewSystem())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	if err := console.New(in, &out, svc).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func readJSON[T any](t *testing.T, path string) []T {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return out
}

// ---------- the test ----------
func TestConsole_EndToEnd_JSONFiles(t *testing.T) {
	dir := t.TempDir()

	// First run: one hotel with two rooms, two customers, two reservations.
	session(t, dir,
		"1", "1", "Grand", "Lisbon", "2", "desk@grand.pt", "5",
		"2", "1", "Ana", "0123456789", "", "1", "Bob", "0123456789", "", "5",
		"3", "1", "1", "1", "1", "2", "1", "5",
		"4",
	)

	hotels := readJSON[domain.Hotel](t, filepath.Join(dir, "hotels.json"))
	if len(hotels) != 1 || hotels[0].AvailableRooms != 0 || hotels[0].TotalRooms != 2 {
		t.Fatalf("unexpected hotels.json: %+v", hotels)
	}
	res := readJSON[domain.Reservation](t, filepath.Join(dir, "reservations.json"))
	if len(res) != 2 || res[0].Status != domain.StatusActive {
		t.Fatalf("unexpected reservations.json: %+v", res)
	}

	// Second run reloads the files: overflow is rejected, cancel frees a room.
	out := session(t, dir,
		"3", "1", "2", "1", "2", "1", "5",
		"1", "3", "5",
		"4",
	)
	if !strings.Contains(out, "no available rooms") || !strings.Contains(out, "Rooms Available: 1/2") {
		t.Fatalf("unexpected second session output:\n%s", out)
	}

	res = readJSON[domain.Reservation](t, filepath.Join(dir, "reservations.json"))
	if len(res) != 2 || res[0].Status != domain.StatusCancelled || res[0].CancelledAt == nil {
		t.Fatalf("cancel not persisted: %+v", res)
	}
	hotels = readJSON[domain.Hotel](t, filepath.Join(dir, "hotels.json"))
	if hotels[0].AvailableRooms != 1 {
		t.Fatalf("availability not persisted: %+v", hotels)
	}
}

func TestOpsServer_ExposesConsoleMetrics(t *testing.T) {
	dir := t.TempDir()
	reg := observability.InitRegistry()
	session(t, dir,
		"1", "1", "Grand", "Lisbon", "1", "desk@grand.pt", "5",
		"2", "1", "Ana", "0123456789", "", "5",
		"3", "1", "1", "1", "1", "1", "1", "5",
		"4",
	)

	st, _ := jsonfile.New(dir)
	srv := server.New()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Health{Store: st, Driver: "json"})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	for _, want := range []string{
		`hotelres_operations_total{entity="reservation",op="create",result="conflict"}`,
		`hotelres_hotel_available_rooms{hotel="1"} 0`,
		`hotelres_store_duration_seconds_count{driver="json",op="save"}`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %s in metrics:\n%s", want, body)
		}
	}
}
