// Package credential manages the OpenAI API keys: one cached slot per owner
// backed by the durable settings store, with one-time migration from the
// legacy local store.
package credential

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// SettingsStore is the durable, owner-scoped side of the key cache.
type SettingsStore interface {
	APIKey(ctx context.Context, ownerID uuid.UUID) (string, error)
	SetAPIKey(ctx context.Context, ownerID uuid.UUID, key string) error
}

// LegacyStore is the pre-migration local key store. Load returns ("", nil)
// when no legacy key exists.
type LegacyStore interface {
	Load() (string, error)
	Clear() error
}

// KeyCache holds one API key slot per owner. Reads and cache writes are
// synchronous; durable persistence happens in the background so a slow store
// never blocks the caller. Owners never see each other's keys.
type KeyCache struct {
	mu   sync.Mutex
	keys map[uuid.UUID]string

	settings SettingsStore
	legacy   LegacyStore
	logger   *slog.Logger

	// persisted signals completion of background writes, for tests.
	persisted sync.WaitGroup
}

// NewKeyCache creates a KeyCache. The legacy store may be nil when no
// migration source exists.
func NewKeyCache(settings SettingsStore, legacy LegacyStore, logger *slog.Logger) *KeyCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &KeyCache{
		keys:     make(map[uuid.UUID]string),
		settings: settings,
		legacy:   legacy,
		logger:   logger,
	}
}

// Get returns the owner's cached key. The second return is false when the
// owner's slot is empty.
func (c *KeyCache) Get(ownerID uuid.UUID) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.keys[ownerID]
	return key, key != ""
}

// Set updates the owner's slot synchronously and persists to the durable
// store in the background. A persistence failure is logged, never surfaced:
// the cached key stays usable for the rest of the session.
func (c *KeyCache) Set(ctx context.Context, ownerID uuid.UUID, key string) {
	c.cache(ownerID, key)

	c.persisted.Add(1)
	go func() {
		defer c.persisted.Done()
		if err := c.settings.SetAPIKey(context.WithoutCancel(ctx), ownerID, key); err != nil {
			c.logger.Error("persist API key failed", "owner", ownerID, "error", err)
		}
	}()
}

// Clear empties the owner's cached slot. The durable store is untouched.
func (c *KeyCache) Clear(ownerID uuid.UUID) {
	c.mu.Lock()
	delete(c.keys, ownerID)
	c.mu.Unlock()
}

// Load hydrates the owner's slot. The legacy store wins when it holds a key:
// the key is migrated to the durable store under this owner and the legacy
// copy removed. Otherwise the durable store is consulted. No key anywhere is
// not an error; the slot simply stays empty.
func (c *KeyCache) Load(ctx context.Context, ownerID uuid.UUID) (string, error) {
	if c.legacy != nil {
		legacyKey, err := c.legacy.Load()
		if err != nil {
			c.logger.Warn("read legacy API key failed", "error", err)
		} else if legacyKey != "" {
			if err := c.settings.SetAPIKey(ctx, ownerID, legacyKey); err != nil {
				return "", err
			}
			if err := c.legacy.Clear(); err != nil {
				c.logger.Warn("remove legacy API key failed", "error", err)
			}
			c.cache(ownerID, legacyKey)
			c.logger.Info("migrated legacy API key", "owner", ownerID)
			return legacyKey, nil
		}
	}

	key, err := c.settings.APIKey(ctx, ownerID)
	if err != nil {
		return "", err
	}
	c.cache(ownerID, key)
	return key, nil
}

// Wait blocks until all in-flight background persists finish. Used on
// shutdown and in tests.
func (c *KeyCache) Wait() {
	c.persisted.Wait()
}

func (c *KeyCache) cache(ownerID uuid.UUID, key string) {
	c.mu.Lock()
	if key == "" {
		delete(c.keys, ownerID)
	} else {
		c.keys[ownerID] = key
	}
	c.mu.Unlock()
}
