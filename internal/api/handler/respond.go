// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/peterlaczo/cs50-finance/internal/api/types"
	"github.com/peterlaczo/cs50-finance/internal/util"
)

// DefaultTimeout bounds a single request end to end.
const DefaultTimeout = 30 * time.Second

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_id"

// respondWithJSON writes payload as a JSON response.
func respondWithJSON(logger *slog.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps application errors onto HTTP status codes.
// Validation and state errors surface their message; auth failures stay
// generic and clear the session cookie so the browser re-authenticates.
func respondWithError(logger *slog.Logger, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput),
		util.IsError(err, util.ErrUnknownSymbol),
		util.IsError(err, util.ErrInsufficientFunds),
		util.IsError(err, util.ErrInsufficientShares),
		util.IsError(err, util.ErrSymbolNotOwned),
		util.IsError(err, util.ErrDuplicateUsername):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		message = util.ErrInvalidCredentials.Error()
	case util.IsError(err, util.ErrNotFound), util.IsError(err, util.ErrInvalidSession):
		statusCode = http.StatusUnauthorized
		message = "please login again"
		clearSessionCookie(w)
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(logger, w, statusCode, types.ErrorResponse{Error: message})
}

// setSessionCookie attaches the session token to the response.
func setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl.Seconds()),
	})
}

// clearSessionCookie expires the session cookie unconditionally.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
