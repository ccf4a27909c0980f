// Package genroauth provides a server-side token lifecycle engine with opaque
// access and refresh tokens, digest-keyed storage, atomic refresh rotation, and
// scope-based authorization.
//
// The package is designed for concurrent server workloads: Engine methods are safe to call
// from multiple goroutines after initialization through [Builder.Build].
//
// # Architecture boundaries
//
// genroauth is the public surface. It exposes [Engine], [Builder], [Config], and value
// types (TokenPair, AuthResult, MetricsSnapshot, etc.). All internal coordination — flow
// orchestration, token minting, metric recording — lives under internal/ and is never
// exported. Storage backends and the scope authorizer live in their own importable
// packages (storage, scope) because callers may supply custom backends or call the
// authorizer without an Engine.
//
// # What this package must NOT do
//
//   - Expose raw storage clients, record encodings, or digest material in its public API.
//   - Hold raw token strings after a method returns (only SHA-256 digests reach storage).
//   - Import any sub-package that re-imports genroauth (no import cycles).
//
// # Performance contract
//
// Validate is the hot path. It performs exactly one backend read and must not allocate
// beyond the returned AuthResult. Generate performs two backend writes; Refresh is allowed
// one read, two deletes, and two writes; Revoke is a single delete.
package genroauth
