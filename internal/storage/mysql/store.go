package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hotel_reservations/internal/adapters/observability"
	"hotel_reservations/internal/domain"
)

const driver = "mysql"

// Store keeps each collection as one JSON document row in `collections`.
type Store struct{ db *sql.DB }

func New(db *sql.DB) *Store { return &Store{db: db} }

// Migrate creates the collections table if needed.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, createCollectionsSQL)
	return err
}

func (s *Store) Load(ctx context.Context, c domain.Collection) (b []byte, err error) {
	defer func(start time.Time) { observability.ObserveStore(driver, "load", start, err) }(time.Now())
	if err = s.db.QueryRowContext(ctx, getCollectionSQL, string(c)).Scan(&b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (s *Store) Save(ctx context.Context, c domain.Collection, data []byte) (err error) {
	defer func(start time.Time) { observability.ObserveStore(driver, "save", start, err) }(time.Now())
	_, err = s.db.ExecContext(ctx, upsertCollectionSQL, string(c), string(data))
	return err
}

func (s *Store) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }
