//go:build integration
// +build integration

package test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	genroauth "github.com/genropy/genro-auth"
	"github.com/genropy/genro-auth/storage"
)

// TestAtomicTakeSingleWinner exercises the storage primitive the rotation
// guarantee rests on: concurrent deletes of one key, exactly one caller
// observes existed=true.
func TestAtomicTakeSingleWinner(t *testing.T) {
	ctx := context.Background()
	backend, _, cleanup := newIntegrationBackend(t)
	defer cleanup()

	rec := makeRecord("digest-race", "u1", storage.KindRefresh, time.Hour)
	if err := backend.Put(ctx, rec.Digest, encodeRecord(t, rec), time.Hour); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	results := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			existed, err := backend.Delete(ctx, rec.Digest)
			if err != nil {
				t.Errorf("Delete failed: %v", err)
			}
			results <- existed
		}()
	}

	close(start)
	wg.Wait()
	close(results)

	winners := 0
	for existed := range results {
		if existed {
			winners++
		}
	}

	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}
}

// TestRefreshRaceSingleWinnerRedis runs the same race through the engine:
// N concurrent refreshes of one token, exactly one new pair minted.
func TestRefreshRaceSingleWinnerRedis(t *testing.T) {
	ctx := context.Background()
	engine, _, cleanup := newIntegrationEngine(t)
	defer cleanup()

	pair, err := engine.Generate(ctx, "u1", []string{"read"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err := engine.Refresh(ctx, pair.RefreshToken)
			results <- err
		}()
	}

	close(start)
	wg.Wait()
	close(results)

	success := 0
	for err := range results {
		switch {
		case err == nil:
			success++
		case errors.Is(err, genroauth.ErrTokenInvalid):
		default:
			t.Fatalf("unexpected refresh error: %v", err)
		}
	}

	if success != 1 {
		t.Fatalf("expected exactly one winner, got %d", success)
	}
}
