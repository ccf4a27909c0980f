package flows

import (
	"context"
	"errors"

	"github.com/genropy/genro-auth/storage"
)

// RefreshFailureKind classifies refresh flow failures for root-level mapping.
type RefreshFailureKind int

const (
	RefreshFailureNone RefreshFailureKind = iota
	RefreshFailureMalformed
	RefreshFailureNotFound
	RefreshFailureExpired
	RefreshFailureWrongKind
	RefreshFailureCorrupt

	// RefreshFailureRaced means the record was live at read time but another
	// caller consumed it before our delete: a lost first-wins race, or a
	// replayed token that was already rotated.
	RefreshFailureRaced

	RefreshFailureMint
	RefreshFailureStore
)

// RefreshResult carries either the replacement pair or failure metadata.
type RefreshResult struct {
	Failure RefreshFailureKind
	Err     error
	Old     *storage.TokenRecord
	Pair    IssuedPair
}

// RunRefresh rotates a token pair. The presented token must be a live refresh
// token; the winner of the delete race mints the replacement pair one
// generation up, under the same lineage. Losers mutate nothing.
func RunRefresh(ctx context.Context, rawRefresh string, deps Deps) RefreshResult {
	if _, err := deps.DecodeToken(rawRefresh); err != nil {
		return RefreshResult{Failure: RefreshFailureMalformed, Err: err}
	}

	digest := deps.DigestToken(rawRefresh)
	data, err := deps.Store.Get(ctx, digest)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return RefreshResult{Failure: RefreshFailureNotFound, Err: err}
		}
		return RefreshResult{Failure: RefreshFailureStore, Err: err}
	}

	record, err := storage.Decode(data)
	if err != nil {
		return RefreshResult{Failure: RefreshFailureCorrupt, Err: err}
	}
	if record.Kind != storage.KindRefresh {
		return RefreshResult{Failure: RefreshFailureWrongKind, Old: record}
	}
	if record.ExpiredAt(deps.Now()) {
		return RefreshResult{Failure: RefreshFailureExpired, Old: record}
	}

	// Atomic take: whoever deletes the live record owns the rotation.
	existed, err := deps.Store.Delete(ctx, digest)
	if err != nil {
		return RefreshResult{Failure: RefreshFailureStore, Err: err, Old: record}
	}
	if !existed {
		return RefreshResult{Failure: RefreshFailureRaced, Old: record}
	}

	// Retire the paired access token; rotation must not leave it working.
	if record.LinkedDigest != "" {
		if _, err := deps.Store.Delete(ctx, record.LinkedDigest); err != nil {
			return RefreshResult{Failure: RefreshFailureStore, Err: err, Old: record}
		}
	}

	pair, err := issuePair(ctx, record.UserID, record.Scopes, record.Lineage, record.Generation+1, deps)
	if err != nil {
		if errors.Is(err, storage.ErrUnavailable) {
			return RefreshResult{Failure: RefreshFailureStore, Err: err, Old: record}
		}
		return RefreshResult{Failure: RefreshFailureMint, Err: err, Old: record}
	}

	return RefreshResult{Old: record, Pair: pair}
}
