//go:build integration
// +build integration

package test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	genroauth "github.com/genropy/genro-auth"
	"github.com/genropy/genro-auth/storage"
)

func newIntegrationBackend(t *testing.T) (*storage.RedisBackend, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	backend := storage.NewRedisBackend(rdb, "tok")

	return backend, mr, func() {
		_ = backend.Close()
		mr.Close()
	}
}

func newIntegrationEngine(t *testing.T) (*genroauth.Engine, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	engine, err := genroauth.New().WithRedis(rdb).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	return engine, mr, func() {
		_ = engine.Close()
		mr.Close()
	}
}

func makeRecord(digest, userID string, kind storage.TokenKind, ttl time.Duration) *storage.TokenRecord {
	now := time.Now()

	return &storage.TokenRecord{
		Digest:     digest,
		UserID:     userID,
		Scopes:     []string{"read"},
		Kind:       kind,
		Generation: 0,
		Lineage:    "lin-" + digest,
		IssuedAt:   now.UnixNano(),
		ExpiresAt:  now.Add(ttl).UnixNano(),
	}
}

func encodeRecord(t *testing.T, rec *storage.TokenRecord) []byte {
	t.Helper()

	data, err := storage.Encode(rec)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return data
}
