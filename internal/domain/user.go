// internal/domain/user.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// User represents a registered account in the trading simulator.
type User struct {
	ID           int64           `db:"id" json:"id"`                  // Primary key, BIGSERIAL in DB
	Username     string          `db:"username" json:"username"`      // Unique, case-sensitive username
	PasswordHash string          `db:"password_hash" json:"-"`        // bcrypt hash, never serialized
	Cash         decimal.Decimal `db:"cash" json:"cash"`              // Cash balance, NUMERIC(20, 4) in DB
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`  // Timestamp of creation
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`  // Timestamp of last update
}

// NewUser creates a new User instance with the configured starting balance.
func NewUser(username, passwordHash string, startingCash decimal.Decimal) *User {
	now := time.Now().UTC()
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Cash:         startingCash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
