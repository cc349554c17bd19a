// internal/api/handler/quote.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/peterlaczo/cs50-finance/internal/quote"
	"github.com/peterlaczo/cs50-finance/internal/util"
)

// QuoteHandler serves ad-hoc symbol quotes.
type QuoteHandler struct {
	quotes quote.Provider
	logger *slog.Logger
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quotes quote.Provider, logger *slog.Logger) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, logger: logger}
}

// QuoteRequest represents the request body for a quote lookup.
type QuoteRequest struct {
	Symbol string `json:"symbol"`
}

// QuoteForm describes the quote form.
// GET /quote
func (h *QuoteHandler) QuoteForm(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"fields": []string{"symbol"},
	})
}

// Quote looks up the current price for a symbol.
// POST /quote
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	q, err := h.quotes.Lookup(r.Context(), req.Symbol)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, q)
}
