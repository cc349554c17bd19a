// internal/session/memory.go
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/peterlaczo/cs50-finance/internal/util"
)

type memoryEntry struct {
	userID    int64
	expiresAt time.Time
}

// MemoryStore is an in-process Store for tests and single-node development.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

// Create registers a new session for userID and returns its opaque token.
func (s *MemoryStore) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memoryEntry{userID: userID, expiresAt: time.Now().Add(TTL)}
	return token, nil
}

// Get resolves a token to its user id.
func (s *MemoryStore) Get(ctx context.Context, token string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[token]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.sessions, token)
		return 0, util.ErrInvalidSession
	}
	return entry.userID, nil
}

// Delete revokes a session.
func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
