package genroauth

import "context"

type clientIPContextKey struct{}
type authResultContextKey struct{}

// WithClientIP attaches the caller’s IP address to ctx. The Engine includes
// it in audit events so sinks can correlate token activity with origins.
//
//	Docs: docs/audit.md
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPContextKey{}, ip)
}

// ContextWithAuthResult attaches a validated [AuthResult] to ctx. The
// middleware package calls this after a successful bearer check; handlers
// read it back with [AuthResultFromContext].
//
//	Docs: docs/middleware.md
func ContextWithAuthResult(ctx context.Context, res *AuthResult) context.Context {
	return context.WithValue(ctx, authResultContextKey{}, res)
}

// AuthResultFromContext returns the [AuthResult] stored by
// [ContextWithAuthResult], or false when the request never passed through
// the auth middleware.
//
//	Docs: docs/middleware.md
func AuthResultFromContext(ctx context.Context) (*AuthResult, bool) {
	if ctx == nil {
		return nil, false
	}

	res, ok := ctx.Value(authResultContextKey{}).(*AuthResult)
	return res, ok
}

func clientIPFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	ip, _ := ctx.Value(clientIPContextKey{}).(string)
	return ip
}
