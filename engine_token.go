package genroauth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/genropy/genro-auth/internal/flows"
	"github.com/genropy/genro-auth/scope"
	"github.com/genropy/genro-auth/storage"
)

// Input caps mirror the storage encoder's length-prefixed fields.
const (
	maxUserIDLen  = 255
	maxScopeLen   = 255
	maxScopeCount = 255
)

// Generate describes the generate operation and its observable behavior.
//
// Generate may return an error when input validation, dependency calls, or security checks fail.
// Generate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Generate mints a fresh access+refresh pair for userID. Scopes are
// deduplicated and sorted before they are bound to the pair; nil scopes are
// valid and mean "no grants". The raw tokens in the returned [TokenPair]
// are the only copies that will ever exist.
//
//	Docs: docs/tokens.md
//	Performance: 2 backend writes, no reads.
func (e *Engine) Generate(ctx context.Context, userID string, scopes []string) (TokenPair, error) {
	if e == nil || !e.flows.Initialized() {
		return TokenPair{}, ErrEngineNotReady
	}
	if e.closed.Load() {
		return TokenPair{}, ErrEngineClosed
	}
	if e.metrics != nil && e.metrics.LatencyEnabled() {
		start := time.Now()
		defer func() { e.metrics.Observe(MetricGenerateLatency, time.Since(start)) }()
	}

	if userID == "" || len(userID) > maxUserIDLen {
		e.metricInc(MetricGenerateFailure)
		e.emitAudit(ctx, auditEventGenerate, false, "", "", 0, ErrInvalidUserID, nil)
		return TokenPair{}, ErrInvalidUserID
	}

	normalized, err := scope.Normalize(scopes)
	if err != nil || len(normalized) > maxScopeCount {
		e.metricInc(MetricGenerateFailure)
		e.emitAudit(ctx, auditEventGenerate, false, userID, "", 0, ErrInvalidScope, nil)
		return TokenPair{}, ErrInvalidScope
	}
	for _, s := range normalized {
		if len(s) > maxScopeLen {
			e.metricInc(MetricGenerateFailure)
			e.emitAudit(ctx, auditEventGenerate, false, userID, "", 0, ErrInvalidScope, nil)
			return TokenPair{}, ErrInvalidScope
		}
	}

	pair, err := e.flows.Generate(ctx, userID, normalized)
	if err != nil {
		e.metricInc(MetricGenerateFailure)
		if errors.Is(err, ErrStorageUnavailable) {
			e.metricInc(MetricStorageUnavailable)
			e.emitAudit(ctx, auditEventGenerate, false, userID, "", 0, err, func() map[string]string {
				return map[string]string{"reason": "backend_unavailable"}
			})
			return TokenPair{}, err
		}
		e.emitAudit(ctx, auditEventGenerate, false, userID, "", 0, err, func() map[string]string {
			return map[string]string{"reason": "mint_failed"}
		})
		return TokenPair{}, fmt.Errorf("%w: %v", ErrTokenMint, err)
	}

	e.metricInc(MetricGenerateSuccess)
	e.emitAudit(ctx, auditEventGenerate, true, userID, pair.Refresh.Lineage, pair.Refresh.Generation, nil, func() map[string]string {
		return map[string]string{
			"scope_count": strconv.Itoa(len(normalized)),
		}
	})

	return e.tokenPair(pair), nil
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
//	Docs: docs/tokens.md
//	Performance: 1 backend read, no writes.
func (e *Engine) Validate(ctx context.Context, rawToken string) (*AuthResult, error) {
	if e == nil || !e.flows.Initialized() {
		return nil, ErrEngineNotReady
	}
	if e.closed.Load() {
		return nil, ErrEngineClosed
	}
	if e.metrics != nil && e.metrics.LatencyEnabled() {
		start := time.Now()
		defer func() { e.metrics.Observe(MetricValidateLatency, time.Since(start)) }()
	}

	res := e.flows.Validate(ctx, rawToken)
	switch res.Failure {
	case flows.ValidateFailureNone:
	case flows.ValidateFailureStore:
		e.metricInc(MetricValidateFailure)
		e.metricInc(MetricStorageUnavailable)
		e.emitAudit(ctx, auditEventValidate, false, "", "", 0, res.Err, func() map[string]string {
			return map[string]string{"reason": "backend_unavailable"}
		})
		return nil, res.Err
	case flows.ValidateFailureCorrupt:
		e.metricInc(MetricValidateFailure)
		log.Print("genroauth: rejected unreadable token record")
		e.emitAudit(ctx, auditEventValidate, false, "", "", 0, ErrTokenInvalid, func() map[string]string {
			return map[string]string{"reason": "corrupt_record"}
		})
		return nil, ErrTokenInvalid
	default:
		e.metricInc(MetricValidateFailure)
		e.emitAudit(ctx, auditEventValidate, false, "", "", 0, ErrTokenInvalid, func() map[string]string {
			return map[string]string{"reason": validateFailureReason(res.Failure)}
		})
		return nil, ErrTokenInvalid
	}

	rec := res.Record
	e.metricInc(MetricValidateSuccess)

	return &AuthResult{
		UserID:    rec.UserID,
		Scopes:    rec.Scopes,
		Kind:      rec.Kind,
		ExpiresAt: time.Unix(0, rec.ExpiresAt).UTC(),
	}, nil
}

// Refresh describes the refresh operation and its observable behavior.
//
// Refresh may return an error when input validation, dependency calls, or security checks fail.
// Refresh does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Refresh atomically consumes a live refresh token and returns its
// replacement pair: same user, same scopes, same lineage, generation one
// higher. Of N concurrent calls with the same token exactly one wins; the
// rest get [ErrTokenInvalid]. A reused (already rotated) token is
// indistinguishable from racing and is reported the same way.
//
//	Docs: docs/tokens.md
//	Performance: 1 read, at most 2 deletes, 2 writes.
func (e *Engine) Refresh(ctx context.Context, rawRefresh string) (TokenPair, error) {
	if e == nil || !e.flows.Initialized() {
		return TokenPair{}, ErrEngineNotReady
	}
	if e.closed.Load() {
		return TokenPair{}, ErrEngineClosed
	}
	if e.metrics != nil && e.metrics.LatencyEnabled() {
		start := time.Now()
		defer func() { e.metrics.Observe(MetricRefreshLatency, time.Since(start)) }()
	}

	res := e.flows.Refresh(ctx, rawRefresh)
	switch res.Failure {
	case flows.RefreshFailureNone:
	case flows.RefreshFailureRaced:
		e.metricInc(MetricRefreshFailure)
		e.metricInc(MetricRefreshReuseDetected)
		user, lineage, generation := recordAuditFields(res.Old)
		e.emitAudit(ctx, auditEventRefreshReuse, false, user, lineage, generation, ErrTokenInvalid, nil)
		return TokenPair{}, ErrTokenInvalid
	case flows.RefreshFailureStore:
		e.metricInc(MetricRefreshFailure)
		e.metricInc(MetricStorageUnavailable)
		user, lineage, generation := recordAuditFields(res.Old)
		e.emitAudit(ctx, auditEventRefresh, false, user, lineage, generation, res.Err, func() map[string]string {
			return map[string]string{"reason": "backend_unavailable"}
		})
		return TokenPair{}, res.Err
	case flows.RefreshFailureMint:
		e.metricInc(MetricRefreshFailure)
		user, lineage, generation := recordAuditFields(res.Old)
		e.emitAudit(ctx, auditEventRefresh, false, user, lineage, generation, res.Err, func() map[string]string {
			return map[string]string{"reason": "mint_failed"}
		})
		return TokenPair{}, fmt.Errorf("%w: %v", ErrTokenMint, res.Err)
	default:
		e.metricInc(MetricRefreshFailure)
		user, lineage, generation := recordAuditFields(res.Old)
		e.emitAudit(ctx, auditEventRefresh, false, user, lineage, generation, ErrTokenInvalid, func() map[string]string {
			return map[string]string{"reason": refreshFailureReason(res.Failure)}
		})
		return TokenPair{}, ErrTokenInvalid
	}

	next := res.Pair
	e.metricInc(MetricRefreshSuccess)
	e.emitAudit(ctx, auditEventRefresh, true, next.Refresh.UserID, next.Refresh.Lineage, next.Refresh.Generation, nil, nil)

	return e.tokenPair(next), nil
}

// Revoke describes the revoke operation and its observable behavior.
//
// Revoke may return an error when input validation, dependency calls, or security checks fail.
// Revoke does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Revoke deletes exactly the record behind rawToken. It does not cascade to
// the paired token, and revoking an unknown, expired, or malformed token is
// a successful no-op.
//
//	Docs: docs/tokens.md
//	Performance: 1 backend delete.
func (e *Engine) Revoke(ctx context.Context, rawToken string) error {
	if e == nil || !e.flows.Initialized() {
		return ErrEngineNotReady
	}
	if e.closed.Load() {
		return ErrEngineClosed
	}
	if e.metrics != nil && e.metrics.LatencyEnabled() {
		start := time.Now()
		defer func() { e.metrics.Observe(MetricRevokeLatency, time.Since(start)) }()
	}

	removed, err := e.flows.Revoke(ctx, rawToken)
	if err != nil {
		e.metricInc(MetricRevokeFailure)
		if errors.Is(err, ErrStorageUnavailable) {
			e.metricInc(MetricStorageUnavailable)
		}
		e.emitAudit(ctx, auditEventRevoke, false, "", "", 0, err, nil)
		return err
	}

	e.metricInc(MetricRevokeSuccess)
	e.emitAudit(ctx, auditEventRevoke, true, "", "", 0, nil, func() map[string]string {
		return map[string]string{
			"removed": strconv.FormatBool(removed),
		}
	})

	return nil
}

func (e *Engine) tokenPair(pair flows.IssuedPair) TokenPair {
	return TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int64(e.config.AccessTTL / time.Second),
		TokenType:    TokenTypeBearer,
	}
}

func recordAuditFields(rec *storage.TokenRecord) (string, string, uint32) {
	if rec == nil {
		return "", "", 0
	}
	return rec.UserID, rec.Lineage, rec.Generation
}

func validateFailureReason(kind flows.ValidateFailureKind) string {
	switch kind {
	case flows.ValidateFailureMalformed:
		return "malformed"
	case flows.ValidateFailureNotFound:
		return "not_found"
	case flows.ValidateFailureExpired:
		return "expired"
	default:
		return "invalid"
	}
}

func refreshFailureReason(kind flows.RefreshFailureKind) string {
	switch kind {
	case flows.RefreshFailureMalformed:
		return "malformed"
	case flows.RefreshFailureNotFound:
		return "not_found"
	case flows.RefreshFailureExpired:
		return "expired"
	case flows.RefreshFailureWrongKind:
		return "wrong_kind"
	case flows.RefreshFailureCorrupt:
		return "corrupt_record"
	default:
		return "invalid"
	}
}
