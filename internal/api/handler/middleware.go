// internal/api/handler/middleware.go
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/peterlaczo/cs50-finance/internal/session"
)

type contextKey string

// userIDKey is the context key for the authenticated user's id.
const userIDKey = contextKey("userID")

// tokenKey is the context key for the raw session token.
const tokenKey = contextKey("sessionToken")

// UserIDFromContext returns the authenticated user id set by RequireSession.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// tokenFromContext returns the raw session token set by RequireSession.
func tokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}

// RequireSession guards routes that need an established session. Requests
// without a resolvable session get a 401 and their stale cookie cleared.
func RequireSession(store session.Store, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(logger, w)
				return
			}

			userID, err := store.Get(r.Context(), cookie.Value)
			if err != nil {
				unauthorized(logger, w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = context.WithValue(ctx, tokenKey, cookie.Value)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(logger *slog.Logger, w http.ResponseWriter) {
	clearSessionCookie(w)
	respondWithJSON(logger, w, http.StatusUnauthorized, map[string]string{"error": "please login again"})
}
