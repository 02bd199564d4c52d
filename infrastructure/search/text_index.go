// Package search provides the full-text index implementations behind the
// domain TextIndex interface: SQLite FTS5 and PostgreSQL tsvector, with a
// shared substring fallback.
package search

import (
	"context"
	"log/slog"

	"github.com/genomelab/genedex/domain/search"
	"github.com/genomelab/genedex/internal/database"
	"gorm.io/gorm"
)

const genesCountQuery = `SELECT COUNT(*) FROM genes`

// textIndex joins the domain interface with the document count both
// concrete indexes expose.
type textIndex interface {
	search.TextIndex
	DocumentCount(ctx context.Context) (int64, error)
}

// NewTextIndex returns the text index for the database dialect, populating
// it from the annotation tables when it holds no documents. On SQLite a
// missing FTS5 module is not fatal: Search degrades to substring matching.
func NewTextIndex(ctx context.Context, db database.Database, logger *slog.Logger) (search.TextIndex, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if db.IsPostgres() {
		idx := NewPostgresTextIndex(db.GORM(), logger)
		if err := populate(ctx, idx, db.GORM(), logger); err != nil {
			return nil, err
		}
		return idx, nil
	}

	idx := NewSQLiteTextIndex(db.GORM(), logger)
	if err := populate(ctx, idx, db.GORM(), logger); err != nil {
		logger.Warn("text index unavailable, search falls back to substring matching", "error", err)
	}
	return idx, nil
}

func populate(ctx context.Context, idx textIndex, db *gorm.DB, logger *slog.Logger) error {
	docs, err := idx.DocumentCount(ctx)
	if err != nil {
		return err
	}
	if docs > 0 {
		return nil
	}

	var genes int64
	if err := db.WithContext(ctx).Raw(genesCountQuery).Scan(&genes).Error; err != nil {
		return err
	}
	if genes == 0 {
		return nil
	}

	logger.Info("populating text index", "genes", genes)
	return idx.Rebuild(ctx)
}
