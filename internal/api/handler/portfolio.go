// internal/api/handler/portfolio.go
package handler

import (
	"log/slog"
	"net/http"

	"github.com/peterlaczo/cs50-finance/internal/service"
	"github.com/peterlaczo/cs50-finance/internal/util"
)

// PortfolioHandler serves the portfolio and history views.
type PortfolioHandler struct {
	portfolio service.PortfolioService
	logger    *slog.Logger
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolio service.PortfolioService, logger *slog.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio, logger: logger}
}

// Index returns the authenticated user's valued holdings and net worth.
// GET /
func (h *PortfolioHandler) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrInvalidSession)
		return
	}

	portfolio, err := h.portfolio.GetPortfolio(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, portfolio)
}

// History returns the authenticated user's full transaction history.
// GET /history
func (h *PortfolioHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrInvalidSession)
		return
	}

	entries, err := h.portfolio.GetHistory(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"transactions": entries,
	})
}
