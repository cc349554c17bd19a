// internal/repository/postgres/transaction_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/peterlaczo/cs50-finance/internal/domain"
	"github.com/peterlaczo/cs50-finance/internal/repository"
)

// TransactionRepository implements repository.TransactionRepository for PostgreSQL.
type TransactionRepository struct {
	// Methods receive their DBExecutor directly, so no *sqlx.DB is held here.
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) repository.TransactionRepository {
	return &TransactionRepository{}
}

// CreateTransaction appends a new ledger entry using the provided DBExecutor.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (user_id, symbol, shares, unit_price, timestamp)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := q.QueryRowContext(ctx, query,
		transaction.UserID,
		transaction.Symbol,
		transaction.Shares,
		transaction.UnitPrice,
		transaction.Timestamp,
	).Scan(&transaction.ID)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetPositions returns the grouped net share count per symbol for a user,
// restricted to positions with a positive total.
func (r *TransactionRepository) GetPositions(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Position, error) {
	positions := []domain.Position{}

	query := `
		SELECT symbol, SUM(shares) AS total_shares
		FROM transactions
		WHERE user_id = $1
		GROUP BY symbol
		HAVING SUM(shares) > 0
		ORDER BY symbol`
	err := q.SelectContext(ctx, &positions, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch positions for user %d: %w", userID, err)
	}

	return positions, nil
}

// GetSharesHeld returns the net share count for one (user, symbol) pair.
// A symbol with no positive position yields zero.
func (r *TransactionRepository) GetSharesHeld(ctx context.Context, q repository.DBExecutor, userID int64, symbol string) (int64, error) {
	var shares int64
	query := `
		SELECT SUM(shares) AS total_shares
		FROM transactions
		WHERE user_id = $1 AND symbol = $2
		GROUP BY symbol
		HAVING SUM(shares) > 0`
	err := q.GetContext(ctx, &shares, query, userID, symbol)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to fetch shares held for user %d symbol %s: %w", userID, symbol, err)
	}
	return shares, nil
}

// GetTransactionsByUserID retrieves a user's full ledger ordered by timestamp.
func (r *TransactionRepository) GetTransactionsByUserID(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}

	query := `
		SELECT id, user_id, symbol, shares, unit_price, timestamp
		FROM transactions
		WHERE user_id = $1
		ORDER BY timestamp`
	err := q.SelectContext(ctx, &transactions, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for user %d: %w", userID, err)
	}

	return transactions, nil
}
