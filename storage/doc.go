// Package storage provides the pluggable key-value layer token records live in,
// plus the compact binary encoding used for the stored values.
//
// # Backends
//
// Two [Backend] implementations ship with the module: [MemoryBackend], a
// mutex-guarded in-process map with lazy expiry, and [RedisBackend], which
// delegates to a shared Redis instance so independent processes observe each
// other's rotations and revocations. Callers may supply their own Backend;
// the engine only ever uses the five-method contract.
//
// # Expiry semantics
//
// Backend TTL eviction is best-effort, never authoritative. Records carry
// their own ExpiresAt and the engine re-checks it on every read, so a backend
// that evicts late (or not at all) never resurrects a dead token.
//
// # Architecture boundaries
//
// This package owns persistence and the record wire format. It does NOT mint
// or hash tokens, check scopes, or decide validity — those responsibilities
// belong to the engine and its flow functions.
//
// # What this package must NOT do
//
//   - Import the root genroauth package (no upward imports).
//   - Interpret record contents beyond encoding and decoding them.
//   - See a raw token; keys handed to a Backend are always digests.
package storage
