package test

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"

	genroauth "github.com/genropy/genro-auth"
)

// ExampleNew demonstrates engine construction with production-style dependencies.
func ExampleNew() {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379"})

	cfg := genroauth.DefaultConfig()
	cfg.Audit.Enabled = true

	engine, _ := genroauth.New().
		WithConfig(cfg).
		WithRedis(rdb).
		WithAuditSink(genroauth.NewJSONWriterSink(os.Stdout)).
		Build()
	_ = engine
}

// ExampleEngine_Generate shows a typical mint call and structured error handling.
func ExampleEngine_Generate() {
	var engine *genroauth.Engine
	pair, err := engine.Generate(context.Background(), "user-1", []string{"orders.read"})
	if err != nil {
		_ = err
	}
	_ = pair.AccessToken
	_ = pair.RefreshToken
}

// ExampleEngine_Refresh shows rotating a refresh token for a replacement pair.
func ExampleEngine_Refresh() {
	var engine *genroauth.Engine
	next, err := engine.Refresh(context.Background(), "raw-refresh-token")
	if err != nil {
		_ = err
	}
	_ = next
}

// ExampleEngine_MetricsSnapshot shows how to read in-process metrics counters.
func ExampleEngine_MetricsSnapshot() {
	var engine *genroauth.Engine
	snapshot := engine.MetricsSnapshot()
	_ = snapshot
}
