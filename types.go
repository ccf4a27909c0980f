package genroauth

import (
	"time"

	"github.com/genropy/genro-auth/storage"
)

// TokenKind distinguishes access tokens from refresh tokens. It aliases
// [storage.TokenKind] so callers never need to import the storage package.
//
//	Docs: docs/tokens.md
type TokenKind = storage.TokenKind

const (
	// KindAccess is an exported constant or variable used by the authentication engine.
	KindAccess = storage.KindAccess
	// KindRefresh is an exported constant or variable used by the authentication engine.
	KindRefresh = storage.KindRefresh
)

// Backend is the pluggable persistence interface consumed by the engine.
// It aliases [storage.Backend]; implement it to store token records in a
// system the built-in memory and Redis backends do not cover.
//
//	Docs: docs/storage.md
type Backend = storage.Backend

// TokenTypeBearer is an exported constant or variable used by the authentication engine.
const TokenTypeBearer = "Bearer"

// TokenPair is returned by [Engine.Generate] and [Engine.Refresh]. It carries
// the only copies of the raw access and refresh tokens that will ever exist;
// the engine persists digests, not tokens.
//
// ExpiresIn is the access token lifetime in whole seconds, TokenType is
// always "Bearer". The JSON field names follow the common OAuth2 token
// response shape so the struct can be serialized directly.
//
//	Docs: docs/tokens.md
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// AuthResult is returned by [Engine.Validate]. It exposes the subject and
// grants bound to a live token, never the token or its digest.
//
//	Docs: docs/tokens.md
type AuthResult struct {
	UserID    string    `json:"user_id"`
	Scopes    []string  `json:"scopes,omitempty"`
	Kind      TokenKind `json:"kind"`
	ExpiresAt time.Time `json:"expires_at"`
}
