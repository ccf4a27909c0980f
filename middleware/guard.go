package middleware

import (
	"errors"
	"net"
	"net/http"
	"strings"

	genroauth "github.com/genropy/genro-auth"
)

// RequireAuth rejects requests that do not carry a valid access token in the
// Authorization header. Validated results are injected into the request
// context and can be read back with [genroauth.AuthResultFromContext].
//
// Refresh tokens are rejected here even though Engine.Validate accepts them:
// a refresh token is a rotation credential, not a request credential.
func RequireAuth(engine *genroauth.Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil {
				unauthorized(w)
				return
			}

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w)
				return
			}

			ctx := genroauth.WithClientIP(r.Context(), remoteIP(r))

			res, err := engine.Validate(ctx, token)
			if err != nil {
				if errors.Is(err, genroauth.ErrStorageUnavailable) {
					http.Error(w, "service unavailable", http.StatusServiceUnavailable)
					return
				}
				unauthorized(w)
				return
			}

			if res.Kind != genroauth.KindAccess {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(genroauth.ContextWithAuthResult(ctx, res)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
