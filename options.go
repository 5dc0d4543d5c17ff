package cellar

import (
	"log/slog"

	"github.com/wijnkelder/cellar/domain/wine"
	"github.com/wijnkelder/cellar/infrastructure/provider"
	"github.com/wijnkelder/cellar/infrastructure/sommelier"
	"github.com/wijnkelder/cellar/internal/config"
)

// databaseType identifies the database.
type databaseType int

const (
	databaseUnset databaseType = iota
	databaseSQLite
	databasePostgres
)

// clientConfig holds configuration for Client construction.
// Use newClientConfig() to create with defaults from internal/config.
type clientConfig struct {
	database databaseType
	dbPath   string
	dbDSN    string
	dataDir  string
	endpoint config.Endpoint
	factory  sommelier.GeneratorFactory
	resolver wine.OwnerResolver
	logger   *slog.Logger
}

// newClientConfig creates a clientConfig with defaults from internal/config.
func newClientConfig() *clientConfig {
	return &clientConfig{
		dataDir:  config.DefaultDataDir(),
		endpoint: config.NewEndpoint(),
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.database = databaseSQLite
		c.dbPath = path
	}
}

// WithPostgres configures PostgreSQL as the database.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.database = databasePostgres
		c.dbDSN = dsn
	}
}

// WithDataDir sets the data directory used for the default SQLite database
// and the legacy key file.
func WithDataDir(dir string) Option {
	return func(c *clientConfig) {
		c.dataDir = dir
	}
}

// WithEndpoint sets the completion endpoint configuration (base URL, model,
// temperature, timeout).
func WithEndpoint(e config.Endpoint) Option {
	return func(c *clientConfig) {
		c.endpoint = e
	}
}

// WithOwnerResolver sets how the authenticated owner is resolved. Defaults
// to reading the owner from the request context.
func WithOwnerResolver(r wine.OwnerResolver) Option {
	return func(c *clientConfig) {
		c.resolver = r
	}
}

// WithGeneratorFactory sets a custom completion-generator factory. Useful
// for tests and alternative providers.
func WithGeneratorFactory(f sommelier.GeneratorFactory) Option {
	return func(c *clientConfig) {
		c.factory = f
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// openAIFactory builds the default generator factory for an endpoint.
func openAIFactory(e config.Endpoint) sommelier.GeneratorFactory {
	return func(apiKey string) provider.TextGenerator {
		return provider.NewOpenAIProviderFromConfig(provider.OpenAIConfig{
			APIKey:  apiKey,
			BaseURL: e.BaseURL(),
			Model:   e.Model(),
			Timeout: e.Timeout(),
		})
	}
}
