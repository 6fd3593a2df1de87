package middleware

import (
	"net/http"

	"github.com/hbnb/hbnb-auth/internal/http/respond"
)

// RequireAdmin is the authorization gate layered behind RequireAuth: the
// caller is authenticated but must also carry the admin claim. A 403 here
// is deliberately distinct from the 401 of a failed authentication.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			respond.Error(w, http.StatusUnauthorized, "missing credentials")
			return
		}
		if !session.IsAdmin {
			respond.Error(w, http.StatusForbidden, "admin privileges required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
