package app

import (
	"context"
	"slices"

	"github.com/rs/zerolog/log"

	"hotel_reservations/internal/domain"
)

// HotelRepository owns the hotels collection. Every mutation is saved before
// it becomes visible in memory.
type HotelRepository struct {
	store domain.Store
	items []domain.Hotel
	book  *reservationBook
}

func (r *HotelRepository) Create(ctx context.Context, in domain.HotelInput) (domain.Hotel, error) {
	in, err := in.Validate()
	if err != nil {
		return domain.Hotel{}, err
	}
	ids := make([]int64, 0, len(r.items))
	for _, h := range r.items {
		ids = append(ids, h.ID)
	}
	h := domain.Hotel{
		ID:             nextID(ids, r.book.hotelIDs()),
		Name:           in.Name,
		Location:       in.Location,
		TotalRooms:     in.TotalRooms,
		AvailableRooms: in.TotalRooms,
		Email:          in.Email,
	}
	if err := r.commit(ctx, append(slices.Clone(r.items), h)); err != nil {
		return domain.Hotel{}, err
	}
	log.Info().Int64("hotel_id", h.ID).Int("rooms", h.TotalRooms).Msg("hotel created")
	return h, nil
}

// ReadAll returns hotels in insertion order.
func (r *HotelRepository) ReadAll() []domain.Hotel {
	return slices.Clone(r.items)
}

func (r *HotelRepository) Get(id int64) (domain.Hotel, error) {
	i := r.index(id)
	if i < 0 {
		return domain.Hotel{}, domain.ErrHotelNotFound
	}
	return r.items[i], nil
}

func (r *HotelRepository) Update(ctx context.Context, id int64, p domain.HotelPatch) (domain.Hotel, error) {
	i := r.index(id)
	if i < 0 {
		return domain.Hotel{}, domain.ErrHotelNotFound
	}
	h := r.items[i]
	var err error
	if p.Name != nil {
		if h.Name, err = domain.ValidateText("name", *p.Name); err != nil {
			return domain.Hotel{}, err
		}
	}
	if p.Location != nil {
		if h.Location, err = domain.ValidateText("location", *p.Location); err != nil {
			return domain.Hotel{}, err
		}
	}
	if p.Email != nil {
		if h.Email, err = domain.ValidateEmail("email", *p.Email); err != nil {
			return domain.Hotel{}, err
		}
	}
	if p.TotalRooms != nil {
		if err := domain.ValidateRooms(*p.TotalRooms); err != nil {
			return domain.Hotel{}, err
		}
		active := r.book.activeForHotel(id)
		if *p.TotalRooms < active {
			return domain.Hotel{}, domain.ErrRoomsBelowActive
		}
		h.TotalRooms = *p.TotalRooms
		h.AvailableRooms = h.TotalRooms - active
	}
	if err := r.put(ctx, h); err != nil {
		return domain.Hotel{}, err
	}
	log.Info().Int64("hotel_id", id).Msg("hotel updated")
	return h, nil
}

func (r *HotelRepository) Delete(ctx context.Context, id int64) error {
	i := r.index(id)
	if i < 0 {
		return domain.ErrHotelNotFound
	}
	if r.book.activeForHotel(id) > 0 {
		return domain.ErrHotelInUse
	}
	if err := r.commit(ctx, slices.Delete(slices.Clone(r.items), i, i+1)); err != nil {
		return err
	}
	log.Info().Int64("hotel_id", id).Msg("hotel deleted")
	return nil
}

// put replaces the stored hotel with the same id.
func (r *HotelRepository) put(ctx context.Context, h domain.Hotel) error {
	i := r.index(h.ID)
	if i < 0 {
		return domain.ErrHotelNotFound
	}
	next := slices.Clone(r.items)
	next[i] = h
	return r.commit(ctx, next)
}

func (r *HotelRepository) commit(ctx context.Context, next []domain.Hotel) error {
	if err := saveCollection(ctx, r.store, domain.Hotels, next); err != nil {
		return err
	}
	r.items = next
	return nil
}

func (r *HotelRepository) index(id int64) int {
	return slices.IndexFunc(r.items, func(h domain.Hotel) bool { return h.ID == id })
}
