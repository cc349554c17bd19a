// internal/repository/user_repo.go
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/peterlaczo/cs50-finance/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user to the database using the provided DBExecutor.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// GetUserByID retrieves a user by their ID using the provided DBExecutor.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetUserByUsername retrieves a user by their username (case-sensitive exact match).
	GetUserByUsername(ctx context.Context, q DBExecutor, username string) (*domain.User, error)
	// GetUserByIDForUpdate retrieves a user and locks their row for the
	// duration of the surrounding transaction. Must be called with a
	// transactional DBExecutor.
	GetUserByIDForUpdate(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// AdjustUserCash applies a signed delta to the user's cash balance.
	AdjustUserCash(ctx context.Context, q DBExecutor, userID int64, delta decimal.Decimal) error
}
