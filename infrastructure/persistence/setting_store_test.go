package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingStore(t *testing.T) {
	ctx := context.Background()
	store := NewSettingStore(newTestDB(t))
	owner := uuid.New()

	t.Run("absent key is empty, not an error", func(t *testing.T) {
		key, err := store.APIKey(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, key)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.SetAPIKey(ctx, owner, "sk-first"))

		key, err := store.APIKey(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, "sk-first", key)
	})

	t.Run("set again upserts", func(t *testing.T) {
		require.NoError(t, store.SetAPIKey(ctx, owner, "sk-second"))

		key, err := store.APIKey(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, "sk-second", key)
	})

	t.Run("keys are owner-scoped", func(t *testing.T) {
		other := uuid.New()
		require.NoError(t, store.SetAPIKey(ctx, other, "sk-other"))

		key, err := store.APIKey(ctx, owner)
		require.NoError(t, err)
		assert.Equal(t, "sk-second", key)
	})
}
