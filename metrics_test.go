package genroauth

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestMetricsDisabledNoIncrement(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})
	m.Inc(MetricGenerateSuccess)

	if got := m.Value(MetricGenerateSuccess); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestMetricsEnabledIncrement(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(MetricGenerateSuccess)
	m.Inc(MetricGenerateSuccess)
	m.Inc(MetricGenerateSuccess)

	if got := m.Value(MetricGenerateSuccess); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestMetricsConcurrentIncrementSafe(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	const goroutines = 32
	const perG = 4000

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perG; j++ {
				m.Inc(MetricRefreshSuccess)
			}
		}()
	}
	wg.Wait()

	want := uint64(goroutines * perG)
	if got := m.Value(MetricRefreshSuccess); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestMetricsHistogramBucketCorrectness(t *testing.T) {
	m := NewMetrics(MetricsConfig{
		Enabled:                 true,
		EnableLatencyHistograms: true,
	})

	observations := []time.Duration{
		5 * time.Millisecond,
		10 * time.Millisecond,
		25 * time.Millisecond,
		50 * time.Millisecond,
		100 * time.Millisecond,
		250 * time.Millisecond,
		500 * time.Millisecond,
		700 * time.Millisecond,
	}

	for _, d := range observations {
		m.Observe(MetricValidateLatency, d)
	}

	snap := m.Snapshot()
	buckets := snap.Histograms[MetricValidateLatency]
	if len(buckets) != 8 {
		t.Fatalf("expected 8 buckets, got %d", len(buckets))
	}

	for i, v := range buckets {
		if v != 1 {
			t.Fatalf("bucket %d expected 1, got %d", i, v)
		}
	}
}

func TestMetricsObserveIgnoresCounterIDs(t *testing.T) {
	m := NewMetrics(MetricsConfig{
		Enabled:                 true,
		EnableLatencyHistograms: true,
	})

	m.Observe(MetricGenerateSuccess, time.Millisecond)

	snap := m.Snapshot()
	for id, buckets := range snap.Histograms {
		for i, v := range buckets {
			if v != 0 {
				t.Fatalf("histogram %d bucket %d expected 0, got %d", id, i, v)
			}
		}
	}
}

func TestMetricsSnapshotConsistency(t *testing.T) {
	m := NewMetrics(MetricsConfig{
		Enabled:                 true,
		EnableLatencyHistograms: true,
	})
	m.Inc(MetricGenerateSuccess)
	m.Inc(MetricValidateFailure)
	m.Inc(MetricValidateFailure)
	m.Observe(MetricRefreshLatency, 2*time.Millisecond)

	snap := m.Snapshot()

	if snap.Counters[MetricGenerateSuccess] != 1 {
		t.Fatalf("expected MetricGenerateSuccess=1 got %d", snap.Counters[MetricGenerateSuccess])
	}
	if snap.Counters[MetricValidateFailure] != 2 {
		t.Fatalf("expected MetricValidateFailure=2 got %d", snap.Counters[MetricValidateFailure])
	}
	if len(snap.Histograms[MetricRefreshLatency]) != 8 {
		t.Fatalf("expected histogram length 8")
	}
	if snap.Histograms[MetricRefreshLatency][0] != 1 {
		t.Fatalf("expected first histogram bucket=1 got %d", snap.Histograms[MetricRefreshLatency][0])
	}
}

func TestEngineOperationsIncrementMetrics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.EnableLatencyHistograms = true

	engine, err := New().WithConfig(cfg).WithMemory().Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	ctx := context.Background()

	pair, err := engine.Generate(ctx, "u1", []string{"read"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := engine.Validate(ctx, pair.AccessToken); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if _, err := engine.Validate(ctx, "bogus"); err == nil {
		t.Fatal("expected validate failure")
	}
	rotated, err := engine.Refresh(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if _, err := engine.Refresh(ctx, pair.RefreshToken); err == nil {
		t.Fatal("expected replayed refresh to fail")
	}
	if err := engine.Revoke(ctx, rotated.AccessToken); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	snap := engine.MetricsSnapshot()
	expect := map[MetricID]uint64{
		MetricGenerateSuccess: 1,
		MetricValidateSuccess: 1,
		MetricValidateFailure: 1,
		MetricRefreshSuccess:  1,
		MetricRefreshFailure:  1,
		MetricRevokeSuccess:   1,
	}
	for id, want := range expect {
		if got := snap.Counters[id]; got != want {
			t.Fatalf("counter %d: expected %d, got %d", id, want, got)
		}
	}

	var validateSamples uint64
	for _, v := range snap.Histograms[MetricValidateLatency] {
		validateSamples += v
	}
	if validateSamples == 0 {
		t.Fatal("expected validate latency observations")
	}
}
