// internal/util/currency.go
package util

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// USD renders a decimal amount as a grouped, two-decimal dollar string,
// e.g. 1234.5 -> "$1,234.50".
func USD(amount decimal.Decimal) string {
	cur := money.GetCurrency(money.USD)
	// Shift into minor units (cents) and round before formatting.
	cents := amount.Shift(int32(cur.Fraction)).Round(0)
	return money.New(cents.IntPart(), money.USD).Display()
}
