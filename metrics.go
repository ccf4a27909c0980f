package genroauth

import (
	internalmetrics "github.com/genropy/genro-auth/internal/metrics"
)

// MetricID identifies a specific counter or histogram bucket in the
// in-process metrics system.
//
//	Docs: docs/metrics.md
type MetricID = internalmetrics.MetricID

const (
	// MetricGenerateSuccess is an exported constant or variable used by the authentication engine.
	MetricGenerateSuccess = MetricID(internalmetrics.MetricGenerateSuccess)
	// MetricGenerateFailure is an exported constant or variable used by the authentication engine.
	MetricGenerateFailure = MetricID(internalmetrics.MetricGenerateFailure)
	// MetricValidateSuccess is an exported constant or variable used by the authentication engine.
	MetricValidateSuccess = MetricID(internalmetrics.MetricValidateSuccess)
	// MetricValidateFailure is an exported constant or variable used by the authentication engine.
	MetricValidateFailure = MetricID(internalmetrics.MetricValidateFailure)
	// MetricRefreshSuccess is an exported constant or variable used by the authentication engine.
	MetricRefreshSuccess = MetricID(internalmetrics.MetricRefreshSuccess)
	// MetricRefreshFailure is an exported constant or variable used by the authentication engine.
	MetricRefreshFailure = MetricID(internalmetrics.MetricRefreshFailure)
	// MetricRefreshReuseDetected is an exported constant or variable used by the authentication engine.
	MetricRefreshReuseDetected = MetricID(internalmetrics.MetricRefreshReuseDetected)
	// MetricRevokeSuccess is an exported constant or variable used by the authentication engine.
	MetricRevokeSuccess = MetricID(internalmetrics.MetricRevokeSuccess)
	// MetricRevokeFailure is an exported constant or variable used by the authentication engine.
	MetricRevokeFailure = MetricID(internalmetrics.MetricRevokeFailure)
	// MetricStorageUnavailable is an exported constant or variable used by the authentication engine.
	MetricStorageUnavailable = MetricID(internalmetrics.MetricStorageUnavailable)
	// MetricGenerateLatency is an exported constant or variable used by the authentication engine.
	MetricGenerateLatency = MetricID(internalmetrics.MetricGenerateLatency)
	// MetricValidateLatency is an exported constant or variable used by the authentication engine.
	MetricValidateLatency = MetricID(internalmetrics.MetricValidateLatency)
	// MetricRefreshLatency is an exported constant or variable used by the authentication engine.
	MetricRefreshLatency = MetricID(internalmetrics.MetricRefreshLatency)
	// MetricRevokeLatency is an exported constant or variable used by the authentication engine.
	MetricRevokeLatency = MetricID(internalmetrics.MetricRevokeLatency)

	metricIDCount = internalmetrics.MetricIDCount
)

// Metrics holds atomic counters and optional latency histograms.
//
//	Docs: docs/metrics.md
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time deep copy of all metrics.
//
//	Docs: docs/metrics.md
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics creates a new [Metrics] instance configured by the given
// [MetricsConfig]. When Enabled is false, all operations are no-ops.
//
//	Docs: docs/metrics.md
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{
		Enabled:       cfg.Enabled,
		EnableLatency: cfg.EnableLatencyHistograms,
	})
}
