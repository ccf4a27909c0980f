package middleware

import (
	"net/http"

	genroauth "github.com/genropy/genro-auth"
	"github.com/genropy/genro-auth/scope"
)

// RequireScopes rejects requests whose validated token does not carry every
// listed scope. It must run after [RequireAuth]; a request with no validated
// result in its context is rejected as unauthorized, not forbidden.
func RequireScopes(required ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, ok := genroauth.AuthResultFromContext(r.Context())
			if !ok {
				unauthorized(w)
				return
			}

			if !scope.Authorize(res.Scopes, required) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
