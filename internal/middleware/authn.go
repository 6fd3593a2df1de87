package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hbnb/hbnb-auth/internal/auth"
	"github.com/hbnb/hbnb-auth/internal/http/respond"
)

type contextKey int

const sessionKey contextKey = iota

// Verifier validates a raw token string and rebuilds the caller session.
type Verifier interface {
	Verify(tokenString string) (auth.Session, error)
}

// RequireAuth is the authentication gate: it demands a bearer token in
// the Authorization header and a passing verification. Missing, malformed,
// expired, and tampered tokens all surface as the same 401.
func RequireAuth(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				respond.Error(w, http.StatusUnauthorized, "missing credentials")
				return
			}

			session, err := v.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns the session stored by RequireAuth.
func SessionFromContext(ctx context.Context) (auth.Session, bool) {
	session, ok := ctx.Value(sessionKey).(auth.Session)
	return session, ok
}
