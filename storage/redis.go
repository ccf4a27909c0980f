package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces token keys when no prefix is configured.
const DefaultRedisPrefix = "tok"

// RedisBackend is a [Backend] over a shared Redis instance. Redis applies
// per-key TTLs natively; DEL's reply carries the existed bool, which gives
// the engine its first-wins rotation guarantee across processes.
//
// Transport failures are wrapped with [ErrUnavailable] so callers can keep
// them distinct from not-found.
type RedisBackend struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisBackend wraps client. prefix namespaces every key; empty means
// [DefaultRedisPrefix]. Closing the backend closes the client.
func NewRedisBackend(client redis.UniversalClient, prefix string) *RedisBackend {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisBackend{client: client, prefix: prefix}
}

func (b *RedisBackend) key(k string) string {
	return b.prefix + ":" + k
}

// Put stores value under key with ttl.
//
//	Performance: 1 Redis SET.
func (b *RedisBackend) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := b.client.Set(ctx, b.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Get fetches the value under key, mapping redis.Nil to [ErrNotFound].
//
//	Performance: 1 Redis GET.
func (b *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return data, nil
}

// Delete removes key and reports whether it existed.
//
//	Performance: 1 Redis DEL.
func (b *RedisBackend) Delete(ctx context.Context, key string) (bool, error) {
	deleted, err := b.client.Del(ctx, b.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return deleted > 0, nil
}

func (b *RedisBackend) Ping(ctx context.Context) error {
	if err := b.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (b *RedisBackend) Close() error {
	return b.client.Close()
}
