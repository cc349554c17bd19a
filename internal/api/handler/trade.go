// internal/api/handler/trade.go
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/peterlaczo/cs50-finance/internal/service"
	"github.com/peterlaczo/cs50-finance/internal/util"
)

// TradeHandler handles buy and sell requests.
type TradeHandler struct {
	trades    service.TradeService
	portfolio service.PortfolioService
	logger    *slog.Logger
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(trades service.TradeService, portfolio service.PortfolioService, logger *slog.Logger) *TradeHandler {
	return &TradeHandler{trades: trades, portfolio: portfolio, logger: logger}
}

// OrderRequest represents the request body for buy and sell.
// Shares is a json.Number so a fractional or non-numeric count is rejected
// here, before the trade executor is reached.
type OrderRequest struct {
	Symbol string      `json:"symbol"`
	Shares json.Number `json:"shares"`
}

// shareCount parses the requested share count as a positive integer.
func (req *OrderRequest) shareCount() (int64, error) {
	shares, err := strconv.ParseInt(req.Shares.String(), 10, 64)
	if err != nil || shares < 1 {
		return 0, fmt.Errorf("number of shares must be a positive integer: %w", util.ErrInvalidInput)
	}
	return shares, nil
}

// BuyForm describes the buy form.
// GET /buy
func (h *TradeHandler) BuyForm(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"fields": []string{"symbol", "shares"},
	})
}

// Buy executes a purchase for the authenticated user.
// POST /buy
func (h *TradeHandler) Buy(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrInvalidSession)
		return
	}

	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	shares, err := req.shareCount()
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	transaction, cost, err := h.trades.Buy(r.Context(), userID, req.Symbol, shares)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"message":        fmt.Sprintf("Successfully bought %d share(s) of %s for %s!", shares, transaction.Symbol, util.USD(cost)),
		"transaction_id": transaction.ID,
	})
}

// SellForm describes the sell form, including the symbols the caller holds.
// GET /sell
func (h *TradeHandler) SellForm(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrInvalidSession)
		return
	}

	symbols, err := h.portfolio.GetOwnedSymbols(r.Context(), userID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"fields":  []string{"symbol", "shares"},
		"symbols": symbols,
	})
}

// Sell executes a sale for the authenticated user.
// POST /sell
func (h *TradeHandler) Sell(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondWithError(h.logger, w, util.ErrInvalidSession)
		return
	}

	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	shares, err := req.shareCount()
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	transaction, proceeds, err := h.trades.Sell(r.Context(), userID, req.Symbol, shares)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"message":        fmt.Sprintf("Successfully sold %d share(s) of %s for %s!", shares, transaction.Symbol, util.USD(proceeds)),
		"transaction_id": transaction.ID,
	})
}
