package redisad

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"hotel_reservations/internal/adapters/observability"
	"hotel_reservations/internal/domain"
)

const driver = "redis"

// Store keeps each collection under <prefix>:<collection> with no expiry.
type Store struct {
	c      *redis.Client
	prefix string
}

func New(addr, pass string, db int, prefix string) *Store {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}), prefix)
}

func NewWithClient(c *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = "hotelres"
	}
	return &Store{c: c, prefix: prefix}
}

func (r *Store) key(c domain.Collection) string { return r.prefix + ":" + string(c) }

func (r *Store) Load(ctx context.Context, c domain.Collection) (b []byte, err error) {
	defer func(start time.Time) { observability.ObserveStore(driver, "load", start, err) }(time.Now())
	b, err = r.c.Get(ctx, r.key(c)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *Store) Save(ctx context.Context, c domain.Collection, data []byte) (err error) {
	defer func(start time.Time) { observability.ObserveStore(driver, "save", start, err) }(time.Now())
	return r.c.Set(ctx, r.key(c), data, 0).Err()
}

func (r *Store) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }

func (r *Store) Close() error { return r.c.Close() }
