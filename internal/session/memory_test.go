// internal/session/memory_test.go
package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterlaczo/cs50-finance/internal/util"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		store := NewMemoryStore()

		token, err := store.Create(ctx, 42)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		userID, err := store.Get(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("TokensAreUnique", func(t *testing.T) {
		store := NewMemoryStore()

		first, err := store.Create(ctx, 1)
		require.NoError(t, err)
		second, err := store.Create(ctx, 1)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		store := NewMemoryStore()

		_, err := store.Get(ctx, "no-such-token")
		assert.ErrorIs(t, err, util.ErrInvalidSession)
	})

	t.Run("DeleteRevokes", func(t *testing.T) {
		store := NewMemoryStore()

		token, err := store.Create(ctx, 42)
		require.NoError(t, err)
		require.NoError(t, store.Delete(ctx, token))

		_, err = store.Get(ctx, token)
		assert.ErrorIs(t, err, util.ErrInvalidSession)
	})

	t.Run("DeleteUnknownTokenIsNoError", func(t *testing.T) {
		store := NewMemoryStore()
		assert.NoError(t, store.Delete(ctx, "no-such-token"))
	})
}
