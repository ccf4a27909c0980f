package storage

import "time"

// TokenKind distinguishes the two halves of an issued pair.
type TokenKind uint8

const (
	KindAccess TokenKind = iota + 1
	KindRefresh
)

func (k TokenKind) String() string {
	switch k {
	case KindAccess:
		return "access"
	case KindRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// TokenRecord is the persisted state behind one issued token. The record is
// keyed by Digest; the raw token it corresponds to is never stored.
//
// TokenRecord instances are written once and never mutated in place: refresh
// replaces both records of a pair, revocation deletes them.
type TokenRecord struct {
	Digest string
	UserID string
	Scopes []string

	Kind         TokenKind
	Generation   uint32
	Lineage      string
	LinkedDigest string

	IssuedAt  int64
	ExpiresAt int64
}

// ExpiredAt reports whether the record is semantically dead at now,
// independent of whether the backend has evicted it yet.
func (r *TokenRecord) ExpiredAt(now time.Time) bool {
	return now.UnixNano() >= r.ExpiresAt
}
