// internal/quote/client.go
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/peterlaczo/cs50-finance/internal/domain"
	"github.com/peterlaczo/cs50-finance/internal/util"
)

// DefaultTimeout bounds a single quote lookup. A lookup that exceeds it is
// reported as an unknown symbol rather than an internal failure, so a slow
// upstream degrades to a validation error instead of taking requests down.
const DefaultTimeout = 5 * time.Second

// quoteResponse is the upstream payload shape.
type quoteResponse struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"companyName"`
	LatestPrice float64 `json:"latestPrice"`
}

// Client is an HTTP implementation of Provider against a quote API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a quote Client for the given API base URL.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// Lookup fetches the current quote for symbol.
// Unknown symbols, upstream timeouts and unusable payloads all map to
// util.ErrUnknownSymbol so callers treat them as validation failures.
func (c *Client) Lookup(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, util.ErrInvalidInput
	}

	reqURL := fmt.Sprintf("%s/stock/%s/quote?token=%s", c.baseURL, url.PathEscape(symbol), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build quote request for %s: %w", symbol, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and transport failures degrade to not-found.
		return nil, fmt.Errorf("quote lookup for %s failed: %w", symbol, util.ErrUnknownSymbol)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote lookup for %s returned status %d: %w", symbol, resp.StatusCode, util.ErrUnknownSymbol)
	}

	var payload quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse quote for %s: %w", symbol, util.ErrUnknownSymbol)
	}

	price := decimal.NewFromFloat(payload.LatestPrice)
	if payload.Symbol == "" || !price.IsPositive() {
		return nil, fmt.Errorf("quote for %s has no usable price: %w", symbol, util.ErrUnknownSymbol)
	}

	return &domain.Quote{
		Symbol: payload.Symbol,
		Name:   payload.CompanyName,
		Price:  price,
	}, nil
}
