package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key is absent or already evicted.
var ErrNotFound = errors.New("record not found")

// ErrUnavailable is returned when the backing store could not complete an
// operation. It is a transient transport condition, never an authorization
// signal; callers must keep it distinct from an invalid token.
var ErrUnavailable = errors.New("storage unavailable")

// Backend is the key-value contract token records are persisted through.
// Keys are opaque digest strings; values are encoded records the backend
// must store verbatim.
type Backend interface {
	// Put stores value under key, replacing any prior value. The key becomes
	// inaccessible after ttl, which must be positive.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns the stored value, or ErrNotFound when the key is absent or
	// expired by the backend's own clock. A missing key is never a hard error.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes key and reports whether a live key existed. Deleting an
	// absent key is a no-op, not an error. The returned bool is the atomic
	// take primitive: under concurrent deletes of one key, exactly one caller
	// observes true.
	Delete(ctx context.Context, key string) (bool, error)

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}
