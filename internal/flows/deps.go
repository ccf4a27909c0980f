package flows

import (
	"context"
	"time"
)

// Store is the narrow slice of the storage backend the flows touch.
type Store interface {
	Put(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) (bool, error)
}

// Deps captures flow dependencies. Root engine builds this once and delegates
// request methods to the matching flow implementation.
type Deps struct {
	Store Store

	NewSecret   func() ([32]byte, error)
	EncodeToken func([32]byte) string
	DecodeToken func(string) ([32]byte, error)
	DigestToken func(string) string
	NewLineage  func() string

	Now        func() time.Time
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	Warn func(format string, args ...any)
}
