package app

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"hotel_reservations/internal/clock"
	"hotel_reservations/internal/domain"
)

// Services bundles the repositories and the reservation manager that share
// one store. All methods assume a single caller at a time.
type Services struct {
	Hotels       *HotelRepository
	Customers    *CustomerRepository
	Reservations *ReservationManager
}

// Open loads the three collections from store and wires the services.
func Open(ctx context.Context, store domain.Store, clk clock.Clock) (*Services, error) {
	var (
		hotels       []domain.Hotel
		customers    []domain.Customer
		reservations []domain.Reservation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		hotels, err = loadCollection[domain.Hotel](gctx, store, domain.Hotels)
		return err
	})
	g.Go(func() (err error) {
		customers, err = loadCollection[domain.Customer](gctx, store, domain.Customers)
		return err
	})
	g.Go(func() (err error) {
		reservations, err = loadCollection[domain.Reservation](gctx, store, domain.Reservations)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	book := &reservationBook{store: store, items: reservations}
	h := &HotelRepository{store: store, items: hotels, book: book}
	c := &CustomerRepository{store: store, items: customers, book: book}
	return &Services{
		Hotels:       h,
		Customers:    c,
		Reservations: &ReservationManager{hotels: h, customers: c, book: book, clock: clk},
	}, nil
}

func loadCollection[T any](ctx context.Context, store domain.Store, c domain.Collection) ([]T, error) {
	b, err := store.Load(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c, err)
	}
	if len(b) == 0 {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c, err)
	}
	return out, nil
}

func saveCollection[T any](ctx context.Context, store domain.Store, c domain.Collection, items []T) error {
	if items == nil {
		items = []T{}
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", c, err)
	}
	if err := store.Save(ctx, c, b); err != nil {
		return fmt.Errorf("save %s: %w", c, err)
	}
	return nil
}

// nextID never hands out an id still referenced by a reservation, so a
// deleted hotel or customer id is not reused.
func nextID(ids []int64, referenced []int64) int64 {
	var max int64
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	for _, id := range referenced {
		if id > max {
			max = id
		}
	}
	return max + 1
}
