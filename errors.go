package genroauth

import (
	"errors"

	"github.com/genropy/genro-auth/storage"
)

var (
	// ErrTokenInvalid is an exported constant or variable used by the authentication engine.
	//
	// Every rejection of a presented token resolves to this one sentinel:
	// unknown, expired, malformed, revoked, and wrong-kind tokens are
	// deliberately indistinguishable to callers.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrInvalidUserID is an exported constant or variable used by the authentication engine.
	ErrInvalidUserID = errors.New("invalid user id")
	// ErrInvalidScope is an exported constant or variable used by the authentication engine.
	ErrInvalidScope = errors.New("invalid scope")
	// ErrEngineClosed is an exported constant or variable used by the authentication engine.
	ErrEngineClosed = errors.New("engine closed")
	// ErrEngineNotReady is an exported constant or variable used by the authentication engine.
	ErrEngineNotReady = errors.New("engine not ready")
	// ErrNoBackend is an exported constant or variable used by the authentication engine.
	ErrNoBackend = errors.New("no storage backend configured")
	// ErrBuilderUsed is an exported constant or variable used by the authentication engine.
	ErrBuilderUsed = errors.New("builder already used")
	// ErrTokenMint is an exported constant or variable used by the authentication engine.
	ErrTokenMint = errors.New("token mint failed")
)

// ErrStorageUnavailable is an exported constant or variable used by the authentication engine.
//
// It aliases [storage.ErrUnavailable] so callers can distinguish backend
// outages from invalid tokens without importing the storage package.
var ErrStorageUnavailable = storage.ErrUnavailable
