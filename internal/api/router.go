// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/peterlaczo/cs50-finance/internal/api/handler"
	"github.com/peterlaczo/cs50-finance/internal/session"
)

// Handlers groups the route handlers wired by NewRouter.
type Handlers struct {
	Auth      *handler.AuthHandler
	Trade     *handler.TradeHandler
	Portfolio *handler.PortfolioHandler
	Quote     *handler.QuoteHandler
}

// NewRouter sets up and returns a new HTTP router. Every route except
// /login, /logout and /register requires an established session.
func NewRouter(h Handlers, sessions session.Store, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// CORS configuration for a browser frontend served elsewhere
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Public routes
	r.Get("/login", h.Auth.LoginForm)
	r.Post("/login", h.Auth.Login)
	r.Get("/register", h.Auth.RegisterForm)
	r.Post("/register", h.Auth.Register)
	r.Get("/logout", h.Auth.Logout)
	r.Post("/logout", h.Auth.Logout)

	// Session-protected routes
	r.Group(func(r chi.Router) {
		r.Use(handler.RequireSession(sessions, logger))

		r.Get("/", h.Portfolio.Index)
		r.Get("/history", h.Portfolio.History)
		r.Get("/quote", h.Quote.QuoteForm)
		r.Post("/quote", h.Quote.Quote)
		r.Get("/buy", h.Trade.BuyForm)
		r.Post("/buy", h.Trade.Buy)
		r.Get("/sell", h.Trade.SellForm)
		r.Post("/sell", h.Trade.Sell)
	})

	return r
}
