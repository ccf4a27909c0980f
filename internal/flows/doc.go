// Package flows contains pure-function orchestrators for every Engine operation.
//
// Each flow function (RunGenerate, RunValidate, RunRefresh, RunRevoke) accepts
// the shared [Deps] wiring and returns results without side-effects beyond the
// injected store. Failure kinds classify what went wrong for root-level error
// mapping and audit codes; the root package decides what callers may learn.
//
// # Architecture boundaries
//
// Flow functions coordinate the token codec and the storage backend. They do
// NOT own either resource — ownership stays with the Engine — and they never
// decide how failures are presented to callers.
//
// # What this package must NOT do
//
//   - Hold mutable state between calls.
//   - Import the root genroauth package (to avoid import cycles).
//   - Perform I/O except through the injected store.
package flows
