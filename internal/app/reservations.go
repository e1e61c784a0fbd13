package app

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hotel_reservations/internal/clock"
	"hotel_reservations/internal/domain"
)

// reservationBook owns the reservations collection. Records are appended or
// updated in place, never removed.
type reservationBook struct {
	store domain.Store
	items []domain.Reservation
}

func (b *reservationBook) get(id int64) (domain.Reservation, error) {
	for _, r := range b.items {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Reservation{}, domain.ErrReservationNotFound
}

func (b *reservationBook) activeForHotel(id int64) int {
	n := 0
	for _, r := range b.items {
		if r.Active() && r.HotelID == id {
			n++
		}
	}
	return n
}

func (b *reservationBook) activeForCustomer(id int64) int {
	n := 0
	for _, r := range b.items {
		if r.Active() && r.CustomerID == id {
			n++
		}
	}
	return n
}

func (b *reservationBook) hotelIDs() []int64 {
	out := make([]int64, 0, len(b.items))
	for _, r := range b.items {
		out = append(out, r.HotelID)
	}
	return out
}

func (b *reservationBook) customerIDs() []int64 {
	out := make([]int64, 0, len(b.items))
	for _, r := range b.items {
		out = append(out, r.CustomerID)
	}
	return out
}

func (b *reservationBook) add(ctx context.Context, r domain.Reservation) error {
	return b.commit(ctx, append(slices.Clone(b.items), r))
}

func (b *reservationBook) put(ctx context.Context, r domain.Reservation) error {
	i := slices.IndexFunc(b.items, func(x domain.Reservation) bool { return x.ID == r.ID })
	if i < 0 {
		return domain.ErrReservationNotFound
	}
	next := slices.Clone(b.items)
	next[i] = r
	return b.commit(ctx, next)
}

func (b *reservationBook) commit(ctx context.Context, next []domain.Reservation) error {
	if err := saveCollection(ctx, b.store, domain.Reservations, next); err != nil {
		return err
	}
	b.items = next
	return nil
}

// ReservationManager creates and cancels reservations and keeps every
// hotel's available rooms equal to total rooms minus active reservations.
type ReservationManager struct {
	hotels    *HotelRepository
	customers *CustomerRepository
	book      *reservationBook
	clock     clock.Clock
}

func (m *ReservationManager) Create(ctx context.Context, customerID, hotelID int64) (domain.Reservation, error) {
	if _, err := m.customers.Get(customerID); err != nil {
		return domain.Reservation{}, err
	}
	h, err := m.hotels.Get(hotelID)
	if err != nil {
		return domain.Reservation{}, err
	}
	if h.AvailableRooms <= 0 {
		return domain.Reservation{}, domain.ErrNoRoomsAvailable
	}

	ids := make([]int64, 0, len(m.book.items))
	for _, r := range m.book.items {
		ids = append(ids, r.ID)
	}
	res := domain.Reservation{
		ID:         nextID(ids, nil),
		Reference:  uuid.NewString(),
		CustomerID: customerID,
		HotelID:    hotelID,
		Status:     domain.StatusActive,
		CreatedAt:  m.clock.Now(),
	}

	h.AvailableRooms--
	if err := m.hotels.put(ctx, h); err != nil {
		return domain.Reservation{}, err
	}
	if err := m.book.add(ctx, res); err != nil {
		h.AvailableRooms++
		if cerr := m.hotels.put(ctx, h); cerr != nil {
			log.Error().Err(cerr).Int64("hotel_id", hotelID).Msg("restore availability failed")
		}
		return domain.Reservation{}, err
	}

	log.Info().
		Int64("reservation_id", res.ID).
		Int64("hotel_id", hotelID).
		Int64("customer_id", customerID).
		Int("available", h.AvailableRooms).
		Msg("reservation created")
	return res, nil
}

// Cancel moves an active reservation to cancelled and frees its room.
// Cancelling twice is rejected with ErrAlreadyCancelled.
func (m *ReservationManager) Cancel(ctx context.Context, id int64) (domain.Reservation, error) {
	res, err := m.book.get(id)
	if err != nil {
		return domain.Reservation{}, err
	}
	if !res.Active() {
		return domain.Reservation{}, domain.ErrAlreadyCancelled
	}

	prev := res
	now := m.clock.Now()
	res.Status = domain.StatusCancelled
	res.CancelledAt = &now
	if err := m.book.put(ctx, res); err != nil {
		return domain.Reservation{}, err
	}

	h, herr := m.hotels.Get(res.HotelID)
	if herr != nil {
		// hotel rows are protected while active reservations exist; only a
		// hand-edited store gets here
		log.Warn().Int64("reservation_id", id).Int64("hotel_id", res.HotelID).Msg("cancelled reservation references missing hotel")
		return res, nil
	}
	if h.AvailableRooms < h.TotalRooms {
		h.AvailableRooms++
	}
	if err := m.hotels.put(ctx, h); err != nil {
		if cerr := m.book.put(ctx, prev); cerr != nil {
			log.Error().Err(cerr).Int64("reservation_id", id).Msg("restore reservation failed")
		}
		return domain.Reservation{}, err
	}

	log.Info().
		Int64("reservation_id", id).
		Int64("hotel_id", h.ID).
		Int("available", h.AvailableRooms).
		Msg("reservation cancelled")
	return res, nil
}

func (m *ReservationManager) Get(id int64) (domain.Reservation, error) {
	return m.book.get(id)
}

// ReadAll returns reservations in creation order; activeOnly filters out
// cancelled ones.
func (m *ReservationManager) ReadAll(activeOnly bool) []domain.Reservation {
	out := make([]domain.Reservation, 0, len(m.book.items))
	for _, r := range m.book.items {
		if activeOnly && !r.Active() {
			continue
		}
		out = append(out, r)
	}
	return out
}
