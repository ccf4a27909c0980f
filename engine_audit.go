package genroauth

import (
	"context"
	"errors"
	"time"
)

const (
	auditEventGenerate     = "token.generate"
	auditEventValidate     = "token.validate"
	auditEventRefresh      = "token.refresh"
	auditEventRefreshReuse = "token.refresh_reuse"
	auditEventRevoke       = "token.revoke"
)

// AuditErrorCode defines a public type used by genro-auth APIs.
//
// AuditErrorCode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditErrorCode string

const (
	auditErrInvalidToken AuditErrorCode = "invalid_token"
	auditErrInvalidInput AuditErrorCode = "invalid_input"
	auditErrUnavailable  AuditErrorCode = "backend_unavailable"
	auditErrEngineClosed AuditErrorCode = "engine_closed"
	auditErrInternal     AuditErrorCode = "internal_error"
)

// emitAudit builds and dispatches one event. metadataBuilder runs only when
// a dispatcher is attached, so hot paths pay nothing for audit when it is
// disabled.
func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	userID string,
	lineage string,
	generation uint32,
	err error,
	metadataBuilder func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := AuditEvent{
		Timestamp:  time.Now().UTC(),
		EventType:  eventType,
		UserID:     userID,
		Lineage:    lineage,
		Generation: generation,
		IP:         clientIPFromContext(ctx),
		Success:    success,
		Metadata:   metadata,
	}
	if code := auditErrorCode(err); code != "" {
		event.Error = string(code)
	}

	e.audit.Emit(ctx, event)
}

// auditErrorCode collapses engine errors into coarse, stable codes. Sinks
// must never receive anything a caller could replay, so the mapping stays
// at sentinel granularity.
func auditErrorCode(err error) AuditErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrTokenInvalid):
		return auditErrInvalidToken
	case errors.Is(err, ErrInvalidUserID),
		errors.Is(err, ErrInvalidScope):
		return auditErrInvalidInput
	case errors.Is(err, ErrStorageUnavailable):
		return auditErrUnavailable
	case errors.Is(err, ErrEngineClosed):
		return auditErrEngineClosed
	default:
		return auditErrInternal
	}
}
