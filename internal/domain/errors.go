package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalid  = errors.New("invalid input")
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

var (
	ErrHotelNotFound       = fmt.Errorf("hotel %w", ErrNotFound)
	ErrCustomerNotFound    = fmt.Errorf("customer %w", ErrNotFound)
	ErrReservationNotFound = fmt.Errorf("reservation %w", ErrNotFound)

	ErrNoRoomsAvailable = fmt.Errorf("%w: no available rooms in this hotel", ErrConflict)
	ErrAlreadyCancelled = fmt.Errorf("%w: reservation already cancelled", ErrConflict)
	ErrHotelInUse       = fmt.Errorf("%w: hotel has active reservations", ErrConflict)
	ErrCustomerInUse    = fmt.Errorf("%w: customer has active reservations", ErrConflict)
	ErrRoomsBelowActive = fmt.Errorf("%w: total rooms below active reservations", ErrConflict)
)

// ValidationError reports a malformed input field. It matches ErrInvalid
// under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }
