// Package prometheus provides Prometheus collectors for genroauth metrics.
//
// [NewPrometheusExporter] accepts a [genroauth.Engine] and exposes an [http.Handler]
// that renders all genroauth counters and histograms in Prometheus text exposition
// format. Counter names are prefixed genroauth_*_total; the histograms are
// genroauth_<op>_latency_seconds, one per engine operation.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
