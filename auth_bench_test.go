package genroauth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func BenchmarkValidateMemory(b *testing.B) {
	engine, cleanup := newBenchmarkEngine(b, false)
	defer cleanup()

	pair, err := engine.Generate(context.Background(), "u1", []string{"read"})
	if err != nil {
		b.Fatalf("generate failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Validate(context.Background(), pair.AccessToken); err != nil {
			b.Fatalf("validate failed: %v", err)
		}
	}
}

func BenchmarkValidateRedis(b *testing.B) {
	engine, cleanup := newBenchmarkEngine(b, true)
	defer cleanup()

	pair, err := engine.Generate(context.Background(), "u1", []string{"read"})
	if err != nil {
		b.Fatalf("generate failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.Validate(context.Background(), pair.AccessToken); err != nil {
			b.Fatalf("validate failed: %v", err)
		}
	}
}

func BenchmarkRefresh(b *testing.B) {
	engine, cleanup := newBenchmarkEngine(b, false)
	defer cleanup()

	pair, err := engine.Generate(context.Background(), "u1", []string{"read"})
	if err != nil {
		b.Fatalf("generate failed: %v", err)
	}
	refresh := pair.RefreshToken

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		next, err := engine.Refresh(context.Background(), refresh)
		if err != nil {
			b.Fatalf("refresh failed: %v", err)
		}
		refresh = next.RefreshToken
	}
}

func BenchmarkGenerateRevoke(b *testing.B) {
	engine, cleanup := newBenchmarkEngine(b, false)
	defer cleanup()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pair, err := engine.Generate(context.Background(), "u1", []string{"read"})
		if err != nil {
			b.Fatalf("generate failed: %v", err)
		}
		_ = engine.Revoke(context.Background(), pair.AccessToken)
		_ = engine.Revoke(context.Background(), pair.RefreshToken)
	}
}

func newBenchmarkEngine(tb testing.TB, useRedis bool) (*Engine, func()) {
	tb.Helper()

	cfg := DefaultConfig()
	cfg.AccessTTL = 10 * time.Minute
	cfg.RefreshTTL = 10 * time.Minute
	cfg.Metrics.Enabled = false
	cfg.Audit.Enabled = false

	builder := New().WithConfig(cfg)

	var cleanup func()
	if useRedis {
		mr, err := miniredis.Run()
		if err != nil {
			tb.Fatalf("miniredis.Run failed: %v", err)
		}
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		builder = builder.WithRedis(rdb)
		cleanup = func() {
			_ = rdb.Close()
			mr.Close()
		}
	} else {
		builder = builder.WithMemory()
		cleanup = func() {}
	}

	engine, err := builder.Build()
	if err != nil {
		cleanup()
		tb.Fatalf("Build failed: %v", err)
	}

	return engine, func() {
		engine.Close()
		cleanup()
	}
}
