// internal/api/handler/auth.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/peterlaczo/cs50-finance/internal/api/types"
	"github.com/peterlaczo/cs50-finance/internal/service"
	"github.com/peterlaczo/cs50-finance/internal/session"
	"github.com/peterlaczo/cs50-finance/internal/util"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	auth     service.AuthService
	sessions session.Store
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth service.AuthService, sessions session.Store, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions, logger: logger}
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

// RegisterForm describes the registration form.
// GET /register
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"fields": []string{"username", "password", "confirmation"},
	})
}

// Register handles new account creation and logs the new user in.
// POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	user, err := h.auth.Register(r.Context(), req.Username, req.Password, req.Confirmation)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	token, err := h.sessions.Create(r.Context(), user.ID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	setSessionCookie(w, token, session.TTL)

	respondWithJSON(h.logger, w, http.StatusCreated, map[string]interface{}{
		"message":  "Registered successfully",
		"username": user.Username,
	})
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginForm describes the login form.
// GET /login
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"fields": []string{"username", "password"},
	})
}

// Login validates credentials and establishes a session.
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	// Forget any existing session first.
	h.dropSession(w, r)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	user, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	token, err := h.sessions.Create(r.Context(), user.ID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	setSessionCookie(w, token, session.TTL)

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"message":  "Logged in",
		"username": user.Username,
	})
}

// Logout revokes the session unconditionally.
// GET or POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.dropSession(w, r)
	respondWithJSON(h.logger, w, http.StatusOK, types.FlashResponse{Message: "Logged out"})
}

// dropSession revokes the server-side session named by the request cookie,
// if any, and expires the cookie.
func (h *AuthHandler) dropSession(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Delete(r.Context(), cookie.Value); err != nil {
			h.logger.Error("Failed to delete session", "error", err)
		}
	}
	clearSessionCookie(w)
}
