// Package internal contains helper utilities that are intentionally private to
// genroauth, including secure token secret generation and digest helpers.
//
// # Sub-packages
//
//   - flows — pure-function flow orchestrators for every Engine operation
//   - metrics — lock-free counters and latency histograms
//
// # What this package must NOT do
//
//   - Export types that appear in the public genroauth API.
//   - Be imported by any package outside the genro-auth module.
package internal
