package flows

import "context"

// RunRevoke deletes the single record behind rawToken. Revocation is
// idempotent and non-cascading: the paired record of the opposite kind stays
// live. The returned bool reports whether a live record was removed; a
// malformed or never-issued token is a successful no-op.
func RunRevoke(ctx context.Context, rawToken string, deps Deps) (bool, error) {
	if _, err := deps.DecodeToken(rawToken); err != nil {
		// Nothing such a token could name is live.
		return false, nil
	}

	return deps.Store.Delete(ctx, deps.DigestToken(rawToken))
}
