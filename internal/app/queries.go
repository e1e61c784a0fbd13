package app

import "hotel_reservations/internal/domain"

// Audit recomputes availability for every hotel from the active
// reservations and returns the hotels whose stored count disagrees.
func (m *ReservationManager) Audit() []domain.AvailabilityDrift {
	var out []domain.AvailabilityDrift
	for _, h := range m.hotels.items {
		expected := h.TotalRooms - m.book.activeForHotel(h.ID)
		if h.AvailableRooms != expected {
			out = append(out, domain.AvailabilityDrift{HotelID: h.ID, Expected: expected, Actual: h.AvailableRooms})
		}
	}
	return out
}

// HotelReservations lists the reservations of one hotel, active first.
func (m *ReservationManager) HotelReservations(hotelID int64) ([]domain.Reservation, error) {
	if _, err := m.hotels.Get(hotelID); err != nil {
		return nil, err
	}
	var active, cancelled []domain.Reservation
	for _, r := range m.book.items {
		if r.HotelID != hotelID {
			continue
		}
		if r.Active() {
			active = append(active, r)
		} else {
			cancelled = append(cancelled, r)
		}
	}
	return append(active, cancelled...), nil
}
