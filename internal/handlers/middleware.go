package handlers

import (
	"context"
	"net/http"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_token"

// contextKey is a private type so context values cannot collide with
// other packages.
type contextKey string

const userIDKey contextKey = "userID"

// SessionResolver resolves an opaque session token to a user id. The
// auth service implements it.
type SessionResolver interface {
	UserIDForToken(token string) (int64, error)
}

// RequireAuth gates protected routes. A request without a resolvable
// session is rejected with 401 before the handler runs; otherwise the
// authenticated user id is injected into the request context.
func RequireAuth(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				respondMessage(w, http.StatusUnauthorized, false, "Unauthorized")
				return
			}

			userID, err := sessions.UserIDForToken(cookie.Value)
			if err != nil {
				respondError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user id injected by
// RequireAuth.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// CORS allows the configured SPA origin to make credentialed requests
// and answers preflight. Wrap the whole router with it so OPTIONS is
// handled before route matching.
func CORS(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
