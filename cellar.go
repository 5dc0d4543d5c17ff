// Package cellar provides a library for managing a personal wine cellar with
// AI-assisted wine information and dish pairing.
//
// Basic usage:
//
//	client, err := cellar.New(
//	    cellar.WithSQLite(".cellar/cellar.db"),
//	    cellar.WithOwnerResolver(auth.NewStaticResolver(ownerID)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.SetKey(ctx, ownerID, os.Getenv("OPENAI_API_KEY"))
//	wines := client.ListWines(ctx)
//	pairing, err := client.PairDish(ctx, "mushroom risotto")
package cellar

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/wijnkelder/cellar/application/service"
	"github.com/wijnkelder/cellar/domain/wine"
	"github.com/wijnkelder/cellar/infrastructure/auth"
	"github.com/wijnkelder/cellar/infrastructure/credential"
	"github.com/wijnkelder/cellar/infrastructure/persistence"
	"github.com/wijnkelder/cellar/infrastructure/sommelier"
	"github.com/wijnkelder/cellar/internal/config"
	"github.com/wijnkelder/cellar/internal/database"
)

// ErrNoDatabase is returned by New when no database option was given.
var ErrNoDatabase = errors.New("no database configured: use WithSQLite or WithPostgres")

// ErrClosed is returned when the client is used after Close.
var ErrClosed = errors.New("client is closed")

// Client is the main entry point for the cellar library.
//
// Access the services via struct fields:
//
//	client.Wines.List(ctx)
//	client.Advice.Pair(ctx, "steak")
type Client struct {
	Wines  *service.Cellar
	Advice *service.Advice

	db     database.Database
	keys   *credential.KeyCache
	closed atomic.Bool
}

// New creates a new Client with the given options.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.database == databaseUnset {
		return nil, ErrNoDatabase
	}

	logger := cfg.logger
	if logger == nil {
		logger = config.DefaultLogger()
	}

	dataDir, err := config.PrepareDataDir(cfg.dataDir)
	if err != nil {
		return nil, err
	}

	var dbURL string
	switch cfg.database {
	case databaseSQLite:
		path := cfg.dbPath
		if path == "" {
			path = filepath.Join(dataDir, "cellar.db")
		}
		dbURL = "sqlite:///" + path
	case databasePostgres:
		dbURL = cfg.dbDSN
	}

	db, err := database.NewDatabase(context.Background(), dbURL)
	if err != nil {
		return nil, err
	}
	if err := persistence.AutoMigrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	resolver := cfg.resolver
	if resolver == nil {
		resolver = auth.ContextResolver{}
	}

	factory := cfg.factory
	if factory == nil {
		factory = openAIFactory(cfg.endpoint)
	}

	keys := credential.NewKeyCache(
		persistence.NewSettingStore(db),
		credential.NewFileStore(dataDir),
		logger,
	)

	wines := service.NewCellar(persistence.NewWineStore(db), resolver, logger)
	som := sommelier.NewSommelier(factory, cfg.endpoint.Temperature(), logger)
	advice := service.NewAdvice(som, keys, wines, logger)

	return &Client{
		Wines:  wines,
		Advice: advice,
		db:     db,
		keys:   keys,
	}, nil
}

// ListWines returns the owner's wines, newest first. Failures degrade to an
// empty list.
func (c *Client) ListWines(ctx context.Context) []wine.Wine {
	if c.closed.Load() {
		return []wine.Wine{}
	}
	return c.Wines.List(ctx)
}

// SaveWine persists a new wine for the authenticated owner.
func (c *Client) SaveWine(ctx context.Context, w wine.Wine) (wine.Wine, error) {
	if c.closed.Load() {
		return wine.Wine{}, ErrClosed
	}
	return c.Wines.Save(ctx, w)
}

// UpdateWine replaces the mutable fields of an owned wine.
func (c *Client) UpdateWine(ctx context.Context, w wine.Wine) (wine.Wine, error) {
	if c.closed.Load() {
		return wine.Wine{}, ErrClosed
	}
	return c.Wines.Update(ctx, w)
}

// DeleteWine removes an owned wine. Deleting a missing wine is success.
func (c *Client) DeleteWine(ctx context.Context, id uuid.UUID) error {
	if c.closed.Load() {
		return ErrClosed
	}
	return c.Wines.Delete(ctx, id)
}

// DrinkBottle removes one bottle from a wine's stock, clamped at zero.
func (c *Client) DrinkBottle(ctx context.Context, w wine.Wine) (wine.Wine, error) {
	if c.closed.Load() {
		return wine.Wine{}, ErrClosed
	}
	return c.Wines.DrinkBottle(ctx, w)
}

// EnrichWine fetches AI-derived attributes for a wine. The result can be
// merged into an entity with Wine.WithEnrichment and persisted separately.
func (c *Client) EnrichWine(ctx context.Context, name string, year int, grapes string) (wine.Info, error) {
	if c.closed.Load() {
		return wine.Info{}, ErrClosed
	}
	return c.Advice.Enrich(ctx, name, year, grapes)
}

// PairDish matches a dish against the owner's in-stock wines.
func (c *Client) PairDish(ctx context.Context, dish string) (wine.Pairing, error) {
	if c.closed.Load() {
		return wine.Pairing{}, ErrClosed
	}
	return c.Advice.Pair(ctx, dish)
}

// CachedKey returns the owner's cached API key, if any.
func (c *Client) CachedKey(ownerID uuid.UUID) (string, bool) {
	return c.keys.Get(ownerID)
}

// SetKey caches the owner's API key synchronously and persists it in the
// background.
func (c *Client) SetKey(ctx context.Context, ownerID uuid.UUID, key string) {
	c.keys.Set(ctx, ownerID, key)
}

// ClearKey empties the owner's cached key slot without touching durable
// storage.
func (c *Client) ClearKey(ownerID uuid.UUID) {
	c.keys.Clear(ownerID)
}

// LoadKey hydrates the key cache for an owner, migrating any legacy local
// key into durable storage.
func (c *Client) LoadKey(ctx context.Context, ownerID uuid.UUID) (string, error) {
	if c.closed.Load() {
		return "", ErrClosed
	}
	return c.keys.Load(ctx, ownerID)
}

// Keys exposes the key cache for wiring into outer surfaces.
func (c *Client) Keys() *credential.KeyCache {
	return c.keys
}

// Close releases the database connection. Safe to call more than once.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.keys.Wait()
	return c.db.Close()
}
