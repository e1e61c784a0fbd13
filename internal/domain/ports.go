package domain

import "context"

// Collection names one persisted entity set.
type Collection string

const (
	Hotels       Collection = "hotels"
	Customers    Collection = "customers"
	Reservations Collection = "reservations"
)

// Store persists whole collections as JSON arrays.
type Store interface {
	// Load returns the stored JSON array, or nil when nothing was saved yet.
	Load(ctx context.Context, c Collection) ([]byte, error)
	// Save replaces the whole collection.
	Save(ctx context.Context, c Collection, data []byte) error
}

// Pinger is implemented by stores backed by a remote server.
type Pinger interface {
	Ping(ctx context.Context) error
}
