package app_test

import (
	"context"
	"errors"
	"testing"

	"hotel_reservations/internal/domain"
)

func TestCustomers_CRUD(t *testing.T) {
	svc := open(t, newMemStore())
	ctx := context.Background()

	if _, err := svc.Customers.Create(ctx, domain.CustomerInput{Name: "Ana", Phone: "12"}); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected phone validation error, got %v", err)
	}

	a := mustCustomer(t, svc, "Ana")
	b := mustCustomer(t, svc, "Bob")
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("unexpected ids: %d %d", a.ID, b.ID)
	}

	got, err := svc.Customers.Update(ctx, a.ID, domain.CustomerPatch{Phone: pstr("9876543210"), Email: pstr("ana@mail.com")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Phone != "9876543210" || got.Email != "ana@mail.com" || got.Name != "Ana" {
		t.Fatalf("unexpected customer: %+v", got)
	}
	got, err = svc.Customers.Update(ctx, a.ID, domain.CustomerPatch{Email: pstr("")})
	if err != nil || got.Email != "" {
		t.Fatalf("clearing email: %+v, %v", got, err)
	}
	if _, err := svc.Customers.Update(ctx, 77, domain.CustomerPatch{Name: pstr("X")}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.Customers.Update(ctx, a.ID, domain.CustomerPatch{Name: pstr("  ")}); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}

	if err := svc.Customers.Delete(ctx, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	all := svc.Customers.ReadAll()
	if len(all) != 1 || all[0].ID != a.ID {
		t.Fatalf("unexpected customers after delete: %+v", all)
	}
	if err := svc.Customers.Delete(ctx, b.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestCustomers_DeleteWithActiveReservation(t *testing.T) {
	svc := open(t, newMemStore())
	ctx := context.Background()
	h := mustHotel(t, svc, 2)
	c := mustCustomer(t, svc, "Ana")

	res, err := svc.Reservations.Create(ctx, c.ID, h.ID)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if err := svc.Customers.Delete(ctx, c.ID); !errors.Is(err, domain.ErrCustomerInUse) {
		t.Fatalf("expected customer in use, got %v", err)
	}
	if _, err := svc.Reservations.Cancel(ctx, res.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := svc.Customers.Delete(ctx, c.ID); err != nil {
		t.Fatalf("delete after cancel: %v", err)
	}
	if n := len(svc.Customers.ReadAll()); n != 0 {
		t.Fatalf("customer still listed")
	}
}
