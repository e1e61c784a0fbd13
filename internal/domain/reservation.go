package domain

import "time"

type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation links a customer to a hotel room. Records are never removed;
// cancelling only moves Status from active to cancelled.
type Reservation struct {
	ID          int64             `json:"id"`
	Reference   string            `json:"reference"`
	CustomerID  int64             `json:"customer_id"`
	HotelID     int64             `json:"hotel_id"`
	Status      ReservationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
	CancelledAt *time.Time        `json:"cancelled_at,omitempty"`
}

func (r Reservation) Active() bool { return r.Status == StatusActive }

// AvailabilityDrift reports a hotel whose stored availability disagrees with
// total rooms minus its active reservations.
type AvailabilityDrift struct {
	HotelID  int64 `json:"hotel_id"`
	Expected int   `json:"expected"`
	Actual   int   `json:"actual"`
}
