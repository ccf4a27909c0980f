package genroauth

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/genropy/genro-auth/internal"
	"github.com/genropy/genro-auth/internal/flows"
	"github.com/genropy/genro-auth/storage"
)

// Engine defines a public type used by genro-auth APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// An Engine mints, validates, rotates, and revokes opaque token pairs
// against one [storage.Backend]. All methods are safe for concurrent use.
// Construct instances through [New] or [NewEngine]; the zero value is not
// ready and rejects every operation.
//
//	Docs: docs/engine.md, docs/tokens.md
type Engine struct {
	config  Config
	backend storage.Backend
	flows   flows.Service
	audit   *auditDispatcher
	metrics *Metrics
	now     func() time.Time
	closed  atomic.Bool
}

// newEngine wires the flow service over the backend. The engine owns the
// backend from here on: Close closes it.
func newEngine(cfg Config, backend storage.Backend, sink AuditSink) *Engine {
	e := &Engine{
		config:  cfg,
		backend: backend,
		audit:   newAuditDispatcher(cfg.Audit, sink),
		metrics: NewMetrics(cfg.Metrics),
		now:     time.Now,
	}

	e.flows = flows.New(flows.Deps{
		Store:       backend,
		NewSecret:   internal.NewTokenSecret,
		EncodeToken: internal.EncodeToken,
		DecodeToken: internal.DecodeToken,
		DigestToken: internal.DigestToken,
		NewLineage:  uuid.NewString,
		Now:         func() time.Time { return e.now() },
		AccessTTL:   cfg.AccessTTL,
		RefreshTTL:  cfg.RefreshTTL,
		Warn:        log.Printf,
	})

	return e
}

// NewEngine constructs an engine over backend with the given token
// lifetimes and every other option at its default. Use the [Builder] when
// audit sinks, metrics toggles, or Redis wiring are needed.
//
//	Docs: docs/engine.md
func NewEngine(accessTTL, refreshTTL time.Duration, backend storage.Backend) (*Engine, error) {
	cfg := defaultConfig()
	cfg.AccessTTL = accessTTL
	cfg.RefreshTTL = refreshTTL
	return New().WithConfig(cfg).WithBackend(backend).Build()
}

// Close describes the close operation and its observable behavior.
//
// Close drains the audit dispatcher, closes the storage backend, and marks
// the engine closed; afterwards every token operation returns
// [ErrEngineClosed]. Close is idempotent: only the first call does work,
// repeat calls return nil.
func (e *Engine) Close() error {
	if e == nil {
		return nil
	}
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}

	if e.audit != nil {
		e.audit.Close()
	}
	if e.backend != nil {
		return e.backend.Close()
	}
	return nil
}

// Ping describes the ping operation and its observable behavior.
//
// Ping may return an error when input validation, dependency calls, or security checks fail.
// Ping does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Ping(ctx context.Context) error {
	if e == nil || e.backend == nil {
		return ErrEngineNotReady
	}
	if e.closed.Load() {
		return ErrEngineClosed
	}
	return e.backend.Ping(ctx)
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped may return an error when input validation, dependency calls, or security checks fail.
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}
