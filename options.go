package genedex

import (
	"log/slog"

	"github.com/genomelab/genedex/internal/config"
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
	database     databaseType
	dbPath       string
	dbDSN        string
	dataDir      string
	logger       *slog.Logger
	searchLimit  int
	cacheEnabled bool
}

// newClientConfig creates a clientConfig with defaults from internal/config.
// This ensures all defaults come from the single source of truth.
func newClientConfig() *clientConfig {
	return &clientConfig{
		dataDir:      config.DefaultDataDir(),
		searchLimit:  config.DefaultSearchLimit,
		cacheEnabled: true,
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite configures SQLite as the database.
// Text search uses FTS5 with a LIKE fallback when FTS5 is unavailable.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.database = databaseSQLite
		c.dbPath = path
	}
}

// WithPostgres configures PostgreSQL from a DSN.
// Text search uses tsvector ranking.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.database = databasePostgres
		c.dbDSN = dsn
	}
}

// WithDataDir sets the data directory.
func WithDataDir(dir string) Option {
	return func(c *clientConfig) {
		c.dataDir = dir
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithSearchLimit sets the default result cap for search queries.
// Defaults to 100. Values <= 0 are ignored.
func WithSearchLimit(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.searchLimit = n
		}
	}
}

// WithCacheDisabled turns off the chromosome-view gene list cache.
// Every atlas request then reads the store directly.
func WithCacheDisabled() Option {
	return func(c *clientConfig) {
		c.cacheEnabled = false
	}
}
