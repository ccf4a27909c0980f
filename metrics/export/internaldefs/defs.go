package internaldefs

import (
	genroauth "github.com/genropy/genro-auth"
)

// CounterDef defines a public type used by genroauth APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   genroauth.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by genroauth APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   genroauth.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the token engine.
var CounterDefs = []CounterDef{
	{ID: genroauth.MetricGenerateSuccess, Name: "genroauth_generate_success_total", Help: "Successful token pair mints."},
	{ID: genroauth.MetricGenerateFailure, Name: "genroauth_generate_failure_total", Help: "Failed token pair mints."},
	{ID: genroauth.MetricValidateSuccess, Name: "genroauth_validate_success_total", Help: "Successful token validations."},
	{ID: genroauth.MetricValidateFailure, Name: "genroauth_validate_failure_total", Help: "Failed token validations."},
	{ID: genroauth.MetricRefreshSuccess, Name: "genroauth_refresh_success_total", Help: "Successful refresh rotations."},
	{ID: genroauth.MetricRefreshFailure, Name: "genroauth_refresh_failure_total", Help: "Failed refresh rotations."},
	{ID: genroauth.MetricRefreshReuseDetected, Name: "genroauth_refresh_reuse_detected_total", Help: "Refresh attempts that lost the rotation race or replayed a spent token."},
	{ID: genroauth.MetricRevokeSuccess, Name: "genroauth_revoke_success_total", Help: "Completed revocations, including no-op revocations."},
	{ID: genroauth.MetricRevokeFailure, Name: "genroauth_revoke_failure_total", Help: "Failed revocations."},
	{ID: genroauth.MetricStorageUnavailable, Name: "genroauth_storage_unavailable_total", Help: "Operations aborted because the storage backend was unreachable."},
}

// HistogramDefs is an exported constant or variable used by the token engine.
var HistogramDefs = []HistogramDef{
	{ID: genroauth.MetricGenerateLatency, Name: "genroauth_generate_latency_seconds", Help: "Generate latency histogram."},
	{ID: genroauth.MetricValidateLatency, Name: "genroauth_validate_latency_seconds", Help: "Validate latency histogram."},
	{ID: genroauth.MetricRefreshLatency, Name: "genroauth_refresh_latency_seconds", Help: "Refresh latency histogram."},
	{ID: genroauth.MetricRevokeLatency, Name: "genroauth_revoke_latency_seconds", Help: "Revoke latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the token engine.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the token engine.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
