// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Transaction is one append-only ledger entry. Shares is signed:
// positive for a buy, negative for a sell. Rows are never updated
// or deleted; holdings and history are derived from them.
type Transaction struct {
	ID        int64           `db:"id" json:"id"`                 // Primary key, BIGSERIAL in DB
	UserID    int64           `db:"user_id" json:"user_id"`       // Owning user
	Symbol    string          `db:"symbol" json:"symbol"`         // Ticker symbol
	Shares    int64           `db:"shares" json:"shares"`         // Signed share count
	UnitPrice decimal.Decimal `db:"unit_price" json:"unit_price"` // Price at execution time, NUMERIC(20, 4) in DB
	Timestamp time.Time       `db:"timestamp" json:"timestamp"`   // Creation time, immutable
}

// NewTransaction creates a new ledger entry for the given user.
func NewTransaction(userID int64, symbol string, shares int64, unitPrice decimal.Decimal) *Transaction {
	return &Transaction{
		UserID:    userID,
		Symbol:    symbol,
		Shares:    shares,
		UnitPrice: unitPrice,
		Timestamp: time.Now().UTC(),
	}
}

// TotalPrice is the absolute cash value of the entry, |unit_price * shares|.
func (t *Transaction) TotalPrice() decimal.Decimal {
	return t.UnitPrice.Mul(decimal.NewFromInt(t.Shares)).Abs()
}

// HistoryEntry is a Transaction decorated with its display value.
type HistoryEntry struct {
	Transaction
	TotalPrice decimal.Decimal `json:"total_price"`
}
