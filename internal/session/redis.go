// internal/session/redis.go
package session

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/peterlaczo/cs50-finance/internal/util"
)

// RedisStore keeps sessions in Redis with a TTL, so logout revokes a
// session on the server side and restarts do not invalidate live logins.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore backed by the given client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(token string) string {
	return "session:" + token
}

// Create registers a new session for userID and returns its opaque token.
func (s *RedisStore) Create(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, sessionKey(token), userID, TTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Get resolves a token to its user id.
func (s *RedisStore) Get(ctx context.Context, token string) (int64, error) {
	val, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return 0, util.ErrInvalidSession
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read session: %w", err)
	}
	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value %q: %w", val, util.ErrInvalidSession)
	}
	return userID, nil
}

// Delete revokes a session.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
