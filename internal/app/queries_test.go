package app_test

import (
	"context"
	"testing"

	"hotel_reservations/internal/domain"
)

func TestAudit_ReportsDrift(t *testing.T) {
	st := newMemStore()
	// hand-edited files: 3 rooms, 1 active reservation, but 3 available
	st.data[domain.Hotels] = []byte(`[{"id":1,"name":"A","location":"B","total_rooms":3,"available_rooms":3,"email":"a@b.com"}]`)
	st.data[domain.Customers] = []byte(`[{"id":1,"name":"Ana","phone":"0123456789"}]`)
	st.data[domain.Reservations] = []byte(`[{"id":1,"reference":"x","customer_id":1,"hotel_id":1,"status":"active","created_at":"2026-10-19T12:00:00Z"}]`)
	svc := open(t, st)

	drift := svc.Reservations.Audit()
	if len(drift) != 1 || drift[0] != (domain.AvailabilityDrift{HotelID: 1, Expected: 2, Actual: 3}) {
		t.Fatalf("unexpected drift: %+v", drift)
	}
}

func TestHotelReservations_ActiveFirst(t *testing.T) {
	svc := open(t, newMemStore())
	ctx := context.Background()
	h := mustHotel(t, svc, 3)
	other := mustHotel(t, svc, 3)
	c := mustCustomer(t, svc, "Ana")

	r1, _ := svc.Reservations.Create(ctx, c.ID, h.ID)
	r2, _ := svc.Reservations.Create(ctx, c.ID, h.ID)
	if _, err := svc.Reservations.Create(ctx, c.ID, other.ID); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if _, err := svc.Reservations.Cancel(ctx, r1.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	got, err := svc.Reservations.HotelReservations(h.ID)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(got) != 2 || got[0].ID != r2.ID || got[1].ID != r1.ID {
		t.Fatalf("unexpected order: %+v", got)
	}
	if _, err := svc.Reservations.HotelReservations(404); err == nil {
		t.Fatalf("expected not found")
	}
}

func TestOpen_RejectsCorruptCollection(t *testing.T) {
	st := newMemStore()
	st.data[domain.Customers] = []byte(`{not json`)
	if _, err := openErr(st); err == nil {
		t.Fatalf("expected decode error")
	}
}
