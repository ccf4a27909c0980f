package genroauth

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestRefreshConcurrencySingleWinner(t *testing.T) {
	engine, err := New().WithMemory().Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	pair, err := engine.Generate(context.Background(), "u1", []string{"read"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	const n = 16
	var wg sync.WaitGroup
	wg.Add(n)

	type outcome struct {
		pair TokenPair
		err  error
	}
	results := make(chan outcome, n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			next, err := engine.Refresh(context.Background(), pair.RefreshToken)
			results <- outcome{pair: next, err: err}
		}()
	}
	wg.Wait()
	close(results)

	success := 0
	fail := 0
	var winner TokenPair
	for res := range results {
		if res.err == nil {
			success++
			winner = res.pair
			continue
		}
		if errors.Is(res.err, ErrTokenInvalid) {
			fail++
			continue
		}
		t.Fatalf("unexpected refresh error: %v", res.err)
	}

	if success != 1 {
		t.Fatalf("expected exactly one refresh success, got %d", success)
	}
	if fail != n-1 {
		t.Fatalf("expected %d refresh failures, got %d", n-1, fail)
	}

	// The winner's pair is live; the rotated-out access token is not.
	if _, err := engine.Validate(context.Background(), winner.AccessToken); err != nil {
		t.Fatalf("winner access token failed validation: %v", err)
	}
	if _, err := engine.Validate(context.Background(), pair.AccessToken); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected rotated-out access token to be invalid, got %v", err)
	}
}

func TestRefreshGenerationMonotonic(t *testing.T) {
	engine, err := New().WithMemory().Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	pair, err := engine.Generate(context.Background(), "u1", []string{"read"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	current := pair
	for i := 0; i < 5; i++ {
		next, err := engine.Refresh(context.Background(), current.RefreshToken)
		if err != nil {
			t.Fatalf("refresh %d failed: %v", i, err)
		}
		// The spent refresh token must be single use.
		if _, err := engine.Refresh(context.Background(), current.RefreshToken); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected spent refresh token to be rejected, got %v", err)
		}
		current = next
	}

	if _, err := engine.Validate(context.Background(), current.AccessToken); err != nil {
		t.Fatalf("final access token failed validation: %v", err)
	}
}
