// internal/repository/transaction_repo.go
package repository

import (
	"context"

	"github.com/peterlaczo/cs50-finance/internal/domain"
)

// TransactionRepository defines the interface for ledger data operations.
// The ledger is append-only: entries are created and read, never changed.
type TransactionRepository interface {
	// CreateTransaction appends a new ledger entry using the provided DBExecutor.
	CreateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// GetPositions returns the grouped net share count per symbol for a user,
	// restricted to positions with a positive total.
	GetPositions(ctx context.Context, q DBExecutor, userID int64) ([]domain.Position, error)
	// GetSharesHeld returns the net share count for one (user, symbol) pair.
	// A symbol with no positive position yields zero.
	GetSharesHeld(ctx context.Context, q DBExecutor, userID int64, symbol string) (int64, error)
	// GetTransactionsByUserID retrieves a user's full ledger ordered by timestamp.
	GetTransactionsByUserID(ctx context.Context, q DBExecutor, userID int64) ([]domain.Transaction, error)
}
