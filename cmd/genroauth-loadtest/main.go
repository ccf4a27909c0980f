package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	genroauth "github.com/genropy/genro-auth"
)

// pairState tracks the live raw tokens of one lineage. The refresh phase
// rotates under the lock; the validate phase reads the access token under it.
type pairState struct {
	mu      sync.Mutex
	access  string
	refresh string
}

func main() {
	var (
		pairs       = flag.Int("pairs", 100000, "number of token pairs to seed")
		concurrency = flag.Int("concurrency", 256, "number of concurrent workers")
		ops         = flag.Int("ops", 200000, "operations per phase (validate + refresh)")
		redisAddr   = flag.String("redis-addr", "", "redis address; if empty, REDIS_ADDR env or miniredis is used")
		useMemory   = flag.Bool("memory", false, "use the in-process memory backend instead of Redis")
		prefix      = flag.String("prefix", "tok", "redis key prefix")
	)
	flag.Parse()

	if *pairs <= 0 || *concurrency <= 0 || *ops <= 0 {
		fmt.Fprintln(os.Stderr, "pairs, concurrency, and ops must be > 0")
		os.Exit(2)
	}

	ctx := context.Background()

	cfg := genroauth.DefaultConfig()
	cfg.AccessTTL = 24 * time.Hour
	cfg.RefreshTTL = 48 * time.Hour
	cfg.Storage.RedisPrefix = *prefix
	cfg.Metrics.Enabled = true
	cfg.Metrics.EnableLatencyHistograms = true

	builder := genroauth.New().WithConfig(cfg)

	var cleanup func()
	if *useMemory {
		builder = builder.WithMemory()
		cleanup = func() {}
		fmt.Println("using in-process memory backend")
	} else {
		addr := *redisAddr
		if addr == "" {
			addr = os.Getenv("REDIS_ADDR")
		}
		if addr == "" {
			mr, err := miniredis.Run()
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to start miniredis: %v\n", err)
				os.Exit(1)
			}
			addr = mr.Addr()
			cleanup = mr.Close
			fmt.Printf("using miniredis at %s\n", addr)
		} else {
			cleanup = func() {}
			fmt.Printf("using redis at %s\n", addr)
		}
		builder = builder.WithRedis(redis.NewUniversalClient(&redis.UniversalOptions{
			Addrs: []string{addr},
		}))
	}
	defer cleanup()

	engine, err := builder.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine build failed: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	states := make([]pairState, *pairs)
	fmt.Printf("seeding %d token pairs...\n", *pairs)
	generateStats := runGeneratePhase(ctx, engine, states, *concurrency)
	validateStats := runValidatePhase(ctx, engine, states, *ops, *concurrency)
	refreshStats := runRefreshPhase(ctx, engine, states, *ops, *concurrency)

	fmt.Println("---- results ----")
	printStats("generate", generateStats)
	printStats("validate", validateStats)
	printStats("refresh", refreshStats)
	printMetrics(engine)
}

func runGeneratePhase(ctx context.Context, engine *genroauth.Engine, states []pairState, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, len(states))
		mu        sync.Mutex
	)

	scopes := []string{"orders.read", "orders.write"}

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= len(states) {
					return
				}
				userID := fmt.Sprintf("user-%d", i%1024)
				t0 := time.Now()
				pair, err := engine.Generate(ctx, userID, scopes)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				} else {
					states[i].access = pair.AccessToken
					states[i].refresh = pair.RefreshToken
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

func runValidatePhase(ctx context.Context, engine *genroauth.Engine, states []pairState, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*7919))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				state := &states[r.Intn(len(states))]

				state.mu.Lock()
				token := state.access
				state.mu.Unlock()

				t0 := time.Now()
				_, err := engine.Validate(ctx, token)
				d := time.Since(t0)
				if err != nil {
					atomic.AddInt64(&failures, 1)
				}
				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

func runRefreshPhase(ctx context.Context, engine *genroauth.Engine, states []pairState, ops, concurrency int) phaseStats {
	var (
		wg        sync.WaitGroup
		cursor    int64
		failures  int64
		latencies = make([]time.Duration, 0, ops)
		mu        sync.Mutex
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*6151))
			for {
				i := int(atomic.AddInt64(&cursor, 1)) - 1
				if i >= ops {
					return
				}
				state := &states[r.Intn(len(states))]

				state.mu.Lock()
				t0 := time.Now()
				next, err := engine.Refresh(ctx, state.refresh)
				d := time.Since(t0)
				if err == nil {
					state.access = next.AccessToken
					state.refresh = next.RefreshToken
				} else {
					atomic.AddInt64(&failures, 1)
				}
				state.mu.Unlock()

				mu.Lock()
				latencies = append(latencies, d)
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()
	total := time.Since(start)
	return computeStats(total, latencies, failures)
}

type phaseStats struct {
	total    time.Duration
	ops      int
	failures int64
	p50      time.Duration
	p95      time.Duration
	p99      time.Duration
	opsPerS  float64
}

func computeStats(total time.Duration, samples []time.Duration, failures int64) phaseStats {
	if len(samples) == 0 {
		return phaseStats{total: total}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return phaseStats{
		total:    total,
		ops:      len(samples),
		failures: failures,
		p50:      percentile(samples, 50),
		p95:      percentile(samples, 95),
		p99:      percentile(samples, 99),
		opsPerS:  float64(len(samples)) / total.Seconds(),
	}
}

func percentile(samples []time.Duration, p int) time.Duration {
	if len(samples) == 0 {
		return 0
	}
	if p <= 0 {
		return samples[0]
	}
	if p >= 100 {
		return samples[len(samples)-1]
	}
	idx := (len(samples) - 1) * p / 100
	return samples[idx]
}

func printStats(name string, s phaseStats) {
	fmt.Printf("%s: ops=%d failures=%d total=%s ops/sec=%.0f p50=%s p95=%s p99=%s\n",
		name,
		s.ops,
		s.failures,
		s.total.Round(time.Millisecond),
		s.opsPerS,
		s.p50.Round(time.Microsecond),
		s.p95.Round(time.Microsecond),
		s.p99.Round(time.Microsecond),
	)
}

func printMetrics(engine *genroauth.Engine) {
	snapshot := engine.MetricsSnapshot()
	counters := []struct {
		name string
		id   genroauth.MetricID
	}{
		{"generate_success", genroauth.MetricGenerateSuccess},
		{"generate_failure", genroauth.MetricGenerateFailure},
		{"validate_success", genroauth.MetricValidateSuccess},
		{"validate_failure", genroauth.MetricValidateFailure},
		{"refresh_success", genroauth.MetricRefreshSuccess},
		{"refresh_failure", genroauth.MetricRefreshFailure},
		{"refresh_reuse_detected", genroauth.MetricRefreshReuseDetected},
		{"storage_unavailable", genroauth.MetricStorageUnavailable},
	}

	fmt.Println("---- engine counters ----")
	for _, c := range counters {
		fmt.Printf("%s=%d\n", c.name, snapshot.Counters[c.id])
	}
}
