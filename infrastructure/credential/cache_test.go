package credential

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettings struct {
	mu      sync.Mutex
	keys    map[uuid.UUID]string
	setErr  error
	getErr  error
	block   chan struct{}
	setHits int
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{keys: make(map[uuid.UUID]string)}
}

func (f *fakeSettings) APIKey(_ context.Context, ownerID uuid.UUID) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.keys[ownerID], nil
}

func (f *fakeSettings) SetAPIKey(_ context.Context, ownerID uuid.UUID, key string) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setHits++
	if f.setErr != nil {
		return f.setErr
	}
	f.keys[ownerID] = key
	return nil
}

func (f *fakeSettings) stored(ownerID uuid.UUID) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.keys[ownerID]
}

func TestKeyCacheSetThenGet(t *testing.T) {
	t.Run("get reflects set synchronously while persist is in flight", func(t *testing.T) {
		settings := newFakeSettings()
		settings.block = make(chan struct{})
		cache := NewKeyCache(settings, nil, nil)
		owner := uuid.New()

		cache.Set(context.Background(), owner, "sk-new")

		key, ok := cache.Get(owner)
		assert.True(t, ok)
		assert.Equal(t, "sk-new", key)
		assert.Empty(t, settings.stored(owner))

		close(settings.block)
		cache.Wait()
		assert.Equal(t, "sk-new", settings.stored(owner))
	})

	t.Run("persist failure keeps cache usable", func(t *testing.T) {
		settings := newFakeSettings()
		settings.setErr = errors.New("db down")
		cache := NewKeyCache(settings, nil, nil)
		owner := uuid.New()

		cache.Set(context.Background(), owner, "sk-new")
		cache.Wait()

		key, ok := cache.Get(owner)
		assert.True(t, ok)
		assert.Equal(t, "sk-new", key)
	})
}

func TestKeyCacheClear(t *testing.T) {
	settings := newFakeSettings()
	cache := NewKeyCache(settings, nil, nil)
	owner := uuid.New()

	cache.Set(context.Background(), owner, "sk-new")
	cache.Wait()
	cache.Clear(owner)

	_, ok := cache.Get(owner)
	assert.False(t, ok)
	// durable copy survives a cache clear
	assert.Equal(t, "sk-new", settings.stored(owner))
}

func TestKeyCacheOwnersIsolated(t *testing.T) {
	settings := newFakeSettings()
	cache := NewKeyCache(settings, nil, nil)
	alice := uuid.New()
	bob := uuid.New()

	cache.Set(context.Background(), alice, "sk-alice")
	cache.Wait()

	t.Run("one owner's key is invisible to another", func(t *testing.T) {
		_, ok := cache.Get(bob)
		assert.False(t, ok)

		key, err := cache.Load(context.Background(), bob)
		require.NoError(t, err)
		assert.Empty(t, key)
	})

	t.Run("each owner loads their own durable key", func(t *testing.T) {
		settings.keys[bob] = "sk-bob"

		key, err := cache.Load(context.Background(), bob)
		require.NoError(t, err)
		assert.Equal(t, "sk-bob", key)

		aliceKey, ok := cache.Get(alice)
		assert.True(t, ok)
		assert.Equal(t, "sk-alice", aliceKey)
	})

	t.Run("clear only touches the clearing owner", func(t *testing.T) {
		cache.Clear(alice)

		_, ok := cache.Get(alice)
		assert.False(t, ok)
		key, ok := cache.Get(bob)
		assert.True(t, ok)
		assert.Equal(t, "sk-bob", key)
	})
}

func TestKeyCacheLoad(t *testing.T) {
	owner := uuid.New()

	t.Run("prefers and migrates legacy key", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, legacyKeyFile), []byte("sk-legacy\n"), 0o600))

		settings := newFakeSettings()
		cache := NewKeyCache(settings, NewFileStore(dir), nil)

		key, err := cache.Load(context.Background(), owner)
		require.NoError(t, err)
		assert.Equal(t, "sk-legacy", key)
		assert.Equal(t, "sk-legacy", settings.stored(owner))

		_, statErr := os.Stat(filepath.Join(dir, legacyKeyFile))
		assert.True(t, os.IsNotExist(statErr))

		cached, ok := cache.Get(owner)
		assert.True(t, ok)
		assert.Equal(t, "sk-legacy", cached)
	})

	t.Run("falls back to durable store", func(t *testing.T) {
		settings := newFakeSettings()
		settings.keys[owner] = "sk-durable"
		cache := NewKeyCache(settings, NewFileStore(t.TempDir()), nil)

		key, err := cache.Load(context.Background(), owner)
		require.NoError(t, err)
		assert.Equal(t, "sk-durable", key)
	})

	t.Run("absent everywhere is not an error", func(t *testing.T) {
		cache := NewKeyCache(newFakeSettings(), NewFileStore(t.TempDir()), nil)

		key, err := cache.Load(context.Background(), owner)
		require.NoError(t, err)
		assert.Empty(t, key)

		_, ok := cache.Get(owner)
		assert.False(t, ok)
	})

	t.Run("durable store failure surfaces", func(t *testing.T) {
		settings := newFakeSettings()
		settings.getErr = errors.New("db down")
		cache := NewKeyCache(settings, nil, nil)

		_, err := cache.Load(context.Background(), owner)
		assert.Error(t, err)
	})
}

func TestFileStore(t *testing.T) {
	t.Run("load missing file", func(t *testing.T) {
		store := NewFileStore(t.TempDir())
		key, err := store.Load()
		require.NoError(t, err)
		assert.Empty(t, key)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		store := NewFileStore(t.TempDir())
		assert.NoError(t, store.Clear())
		assert.NoError(t, store.Clear())
	})
}
