// Package middleware exposes HTTP middleware adapters for token and scope
// enforcement built on top of genroauth.Engine validation.
//
// # Guards
//
//   - [RequireAuth] — bearer token extraction plus Engine.Validate; access tokens only.
//   - [RequireScopes] — scope enforcement over the validated result injected by RequireAuth.
//
// RequireAuth reads the Authorization header, calls Engine.Validate, and injects
// the validated result into the request context via genroauth.ContextWithAuthResult.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Engine calls. It does NOT implement
// token logic itself — all decisions are delegated to Engine.Validate and the
// scope package.
//
// # What this package must NOT do
//
//   - Inspect or decode tokens directly (delegates to Engine).
//   - Access storage backends (Engine handles I/O).
//   - Distinguish missing, expired, and revoked tokens in responses (all map to 401).
package middleware
