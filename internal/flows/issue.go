package flows

import (
	"context"

	"github.com/genropy/genro-auth/storage"
)

// IssuedPair carries the raw token pair plus the records persisted for it.
// The raw strings exist only in this result; stores only ever see digests.
type IssuedPair struct {
	AccessToken  string
	RefreshToken string

	Access  *storage.TokenRecord
	Refresh *storage.TokenRecord
}

// RunGenerate mints a fresh pair at generation 1 under a new lineage.
func RunGenerate(ctx context.Context, userID string, scopes []string, deps Deps) (IssuedPair, error) {
	return issuePair(ctx, userID, scopes, deps.NewLineage(), 1, deps)
}

func issuePair(
	ctx context.Context,
	userID string,
	scopes []string,
	lineage string,
	generation uint32,
	deps Deps,
) (IssuedPair, error) {
	accessSecret, err := deps.NewSecret()
	if err != nil {
		return IssuedPair{}, err
	}
	refreshSecret, err := deps.NewSecret()
	if err != nil {
		return IssuedPair{}, err
	}

	rawAccess := deps.EncodeToken(accessSecret)
	rawRefresh := deps.EncodeToken(refreshSecret)
	accessDigest := deps.DigestToken(rawAccess)
	refreshDigest := deps.DigestToken(rawRefresh)

	now := deps.Now()
	access := &storage.TokenRecord{
		Digest:       accessDigest,
		UserID:       userID,
		Scopes:       scopes,
		Kind:         storage.KindAccess,
		Generation:   generation,
		Lineage:      lineage,
		LinkedDigest: refreshDigest,
		IssuedAt:     now.UnixNano(),
		ExpiresAt:    now.Add(deps.AccessTTL).UnixNano(),
	}
	refresh := &storage.TokenRecord{
		Digest:       refreshDigest,
		UserID:       userID,
		Scopes:       scopes,
		Kind:         storage.KindRefresh,
		Generation:   generation,
		Lineage:      lineage,
		LinkedDigest: accessDigest,
		IssuedAt:     now.UnixNano(),
		ExpiresAt:    now.Add(deps.RefreshTTL).UnixNano(),
	}

	accessBytes, err := storage.Encode(access)
	if err != nil {
		return IssuedPair{}, err
	}
	refreshBytes, err := storage.Encode(refresh)
	if err != nil {
		return IssuedPair{}, err
	}

	if err := deps.Store.Put(ctx, accessDigest, accessBytes, deps.AccessTTL); err != nil {
		return IssuedPair{}, err
	}
	if err := deps.Store.Put(ctx, refreshDigest, refreshBytes, deps.RefreshTTL); err != nil {
		// Best-effort reclaim so a failed mint leaves no half pair behind.
		if _, delErr := deps.Store.Delete(ctx, accessDigest); delErr != nil && deps.Warn != nil {
			deps.Warn("genroauth: orphaned access record cleanup failed: %v", delErr)
		}
		return IssuedPair{}, err
	}

	return IssuedPair{
		AccessToken:  rawAccess,
		RefreshToken: rawRefresh,
		Access:       access,
		Refresh:      refresh,
	}, nil
}
