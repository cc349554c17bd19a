// internal/session/store.go
package session

import (
	"context"
	"time"
)

// TTL is how long a session stays valid without being re-established.
const TTL = 24 * time.Hour

// Store is an opaque server-side session registry. Sessions map an opaque
// token (carried in a browser cookie) to an authenticated user id.
// Deleting the token revokes the session immediately.
type Store interface {
	// Create registers a new session for userID and returns its opaque token.
	Create(ctx context.Context, userID int64) (string, error)
	// Get resolves a token to its user id. An unknown or expired token
	// yields util.ErrInvalidSession.
	Get(ctx context.Context, token string) (int64, error)
	// Delete revokes a session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}
