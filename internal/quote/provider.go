// internal/quote/provider.go
package quote

import (
	"context"

	"github.com/peterlaczo/cs50-finance/internal/domain"
)

// Provider resolves a ticker symbol to a point-in-time quote.
// Implementations must be safe to call repeatedly for the same symbol;
// an unknown symbol is reported as util.ErrUnknownSymbol, not a crash.
type Provider interface {
	Lookup(ctx context.Context, symbol string) (*domain.Quote, error)
}
