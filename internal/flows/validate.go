package flows

import (
	"context"
	"errors"

	"github.com/genropy/genro-auth/storage"
)

// ValidateFailureKind classifies validation failures for root-level mapping.
// Everything except ValidateFailureStore collapses into one invalid-token
// error at the root; the distinction exists for audit codes and metrics only.
type ValidateFailureKind int

const (
	ValidateFailureNone ValidateFailureKind = iota
	ValidateFailureMalformed
	ValidateFailureNotFound
	ValidateFailureExpired
	ValidateFailureCorrupt
	ValidateFailureStore
)

// ValidateResult carries either the live record or classified failure.
type ValidateResult struct {
	Failure ValidateFailureKind
	Err     error
	Record  *storage.TokenRecord
}

// RunValidate resolves a presented raw token against the store. It never
// mutates state: one digest computation, one read, one expiry re-check.
func RunValidate(ctx context.Context, rawToken string, deps Deps) ValidateResult {
	if _, err := deps.DecodeToken(rawToken); err != nil {
		return ValidateResult{Failure: ValidateFailureMalformed, Err: err}
	}

	digest := deps.DigestToken(rawToken)
	data, err := deps.Store.Get(ctx, digest)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ValidateResult{Failure: ValidateFailureNotFound, Err: err}
		}
		return ValidateResult{Failure: ValidateFailureStore, Err: err}
	}

	record, err := storage.Decode(data)
	if err != nil {
		return ValidateResult{Failure: ValidateFailureCorrupt, Err: err}
	}

	// The backend's TTL eviction is best-effort; the record's own deadline
	// decides.
	if record.ExpiredAt(deps.Now()) {
		return ValidateResult{Failure: ValidateFailureExpired, Record: record}
	}

	return ValidateResult{Record: record}
}
