package main

import (
	"strings"

	"github.com/genomelab/genedex"
	"github.com/genomelab/genedex/internal/config"
)

// clientOptions returns the genedex.Option slice derived from the shared
// parts of AppConfig: database storage, the search result cap, and the
// chromosome view cache flag. Callers append entrypoint-specific options
// (logger, data dir) before passing the full slice to genedex.New.
func clientOptions(cfg config.AppConfig) []genedex.Option {
	opts := storageOptions(cfg)

	if cfg.SearchLimit() > 0 {
		opts = append(opts, genedex.WithSearchLimit(cfg.SearchLimit()))
	}
	if !cfg.CacheEnabled() {
		opts = append(opts, genedex.WithCacheDisabled())
	}

	return opts
}

// storageOptions returns the genedex.Option for the configured database
// backend.
func storageOptions(cfg config.AppConfig) []genedex.Option {
	dbURL := cfg.DBURL()

	if dbURL != "" && !isSQLite(dbURL) {
		return []genedex.Option{genedex.WithPostgres(dbURL)}
	}

	dbPath := cfg.DataDir() + "/genedex.db"
	if dbURL != "" && isSQLite(dbURL) {
		// sqlite:///abs/path.db carries the absolute path /abs/path.db.
		dbPath = strings.TrimPrefix(dbURL, "sqlite://")
		if dbPath == dbURL {
			dbPath = strings.TrimPrefix(dbURL, "sqlite:")
		}
	}

	return []genedex.Option{genedex.WithSQLite(dbPath)}
}

// isSQLite checks if the database URL is for SQLite.
func isSQLite(url string) bool {
	return strings.HasPrefix(url, "sqlite:")
}
