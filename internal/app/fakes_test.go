package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel_reservations/internal/app"
	"hotel_reservations/internal/clock"
	"hotel_reservations/internal/domain"
)

// ---- fakes ----

var errDisk = errors.New("disk full")

type memStore struct {
	data   map[domain.Collection][]byte
	failOn map[domain.Collection]bool
	saves  int
}

func newMemStore() *memStore {
	return &memStore{data: map[domain.Collection][]byte{}, failOn: map[domain.Collection]bool{}}
}

func (m *memStore) Load(ctx context.Context, c domain.Collection) ([]byte, error) {
	return m.data[c], nil
}

func (m *memStore) Save(ctx context.Context, c domain.Collection, b []byte) error {
	if m.failOn[c] {
		return errDisk
	}
	m.saves++
	m.data[c] = append([]byte(nil), b...)
	return nil
}

var t0 = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func open(t *testing.T, st domain.Store) *app.Services {
	t.Helper()
	svc, err := app.Open(context.Background(), st, clock.NewFixed(t0))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return svc
}

func mustHotel(t *testing.T, svc *app.Services, rooms int) domain.Hotel {
	t.Helper()
	h, err := svc.Hotels.Create(context.Background(), domain.HotelInput{
		Name: "Grand", Location: "Lisbon", TotalRooms: rooms, Email: "desk@grand.pt",
	})
	if err != nil {
		t.Fatalf("create hotel: %v", err)
	}
	return h
}

func mustCustomer(t *testing.T, svc *app.Services, name string) domain.Customer {
	t.Helper()
	c, err := svc.Customers.Create(context.Background(), domain.CustomerInput{Name: name, Phone: "0123456789"})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return c
}

// checkInvariant asserts available + active == total for every hotel.
func checkInvariant(t *testing.T, svc *app.Services) {
	t.Helper()
	active := map[int64]int{}
	for _, r := range svc.Reservations.ReadAll(true) {
		active[r.HotelID]++
	}
	for _, h := range svc.Hotels.ReadAll() {
		if h.AvailableRooms+active[h.ID] != h.TotalRooms {
			t.Fatalf("hotel %d: available=%d active=%d total=%d", h.ID, h.AvailableRooms, active[h.ID], h.TotalRooms)
		}
		if h.AvailableRooms < 0 || h.AvailableRooms > h.TotalRooms {
			t.Fatalf("hotel %d: available %d out of range", h.ID, h.AvailableRooms)
		}
	}
	if drift := svc.Reservations.Audit(); len(drift) != 0 {
		t.Fatalf("audit drift: %+v", drift)
	}
}

func pstr(s string) *string { return &s }
func pint(i int) *int       { return &i }

func openErr(st domain.Store) (*app.Services, error) {
	return app.Open(context.Background(), st, clock.NewFixed(t0))
}
