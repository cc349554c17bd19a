// internal/domain/holding.go
package domain

import (
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Position is the raw grouped ledger sum for a (user, symbol) pair.
// A position is active iff TotalShares > 0.
type Position struct {
	Symbol      string `db:"symbol" json:"symbol"`
	TotalShares int64  `db:"total_shares" json:"total_shares"`
}

// Holding is an active position valued at the current quoted price.
type Holding struct {
	Symbol      string          `json:"symbol"`
	Name        string          `json:"name"`
	TotalShares int64           `json:"total_shares"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"` // unit_price * total_shares
}

// Portfolio is a user's full valuation: cash plus all active holdings.
type Portfolio struct {
	Cash     decimal.Decimal `json:"cash"`
	Holdings []Holding       `json:"holdings"`
	Total    decimal.Decimal `json:"total"` // cash + sum of holding total prices
}

// Quote is a point-in-time price/name lookup result for a symbol.
type Quote struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}
