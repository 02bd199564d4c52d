package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/genomelab/genedex/domain/search"
	"gorm.io/gorm"
)

// SQL statements for SQLite FTS5 text index operations. Column order in
// gene_fts fixes the snippet() column numbers used by the search select.
const (
	sqliteCreateFTS5Table = `
CREATE VIRTUAL TABLE IF NOT EXISTS gene_fts USING fts5(
    gene_id UNINDEXED,
    core,
    synonyms,
    go_terms,
    traits,
    tokenize='porter unicode61'
)`

	sqliteInsertQuery = `
INSERT INTO gene_fts (gene_id, core, synonyms, go_terms, traits)
VALUES (?, ?, ?, ?, ?)`

	sqliteDeleteQuery = `DELETE FROM gene_fts WHERE gene_id IN ?`

	sqliteDeleteAllQuery = `DELETE FROM gene_fts`

	sqliteCountQuery = `SELECT COUNT(*) FROM gene_fts`

	sqliteSearchSelect = `gene_id,
bm25(gene_fts) AS score,
snippet(gene_fts, 1, '[[', ']]', '…', 12) AS core_snippet,
snippet(gene_fts, 2, '[[', ']]', '…', 12) AS synonym_snippet,
snippet(gene_fts, 3, '[[', ']]', '…', 12) AS go_term_snippet,
snippet(gene_fts, 4, '[[', ']]', '…', 12) AS trait_snippet`

	sqliteComposeQuery = `
SELECT g.id AS gene_id,
       g.symbol || ' ' || g.name || ' ' || COALESCE(g.description, '') || ' ' || g.gene_type AS core,
       COALESCE((SELECT group_concat(s.synonym, ' ') FROM gene_synonyms s WHERE s.gene_id = g.id), '') AS synonyms,
       COALESCE((SELECT group_concat(a.term, ' ') FROM go_annotations a WHERE a.gene_id = g.id), '') AS go_terms,
       COALESCE((SELECT group_concat(t.trait, ' ') FROM trait_associations t WHERE t.gene_id = g.id), '') AS traits
FROM genes g`
)

// ErrSQLiteTextInitializationFailed indicates SQLite FTS5 initialization
// failed, usually because the FTS5 module is missing from the build.
var ErrSQLiteTextInitializationFailed = errors.New("failed to initialize SQLite FTS5 text index")

// SQLiteTextIndex implements search.TextIndex using SQLite FTS5. When FTS5
// is unavailable, Search degrades to substring matching over the genes
// table; Index and Rebuild report the initialization error.
type SQLiteTextIndex struct {
	db          *gorm.DB
	logger      *slog.Logger
	initialized bool
	mu          sync.Mutex
}

// NewSQLiteTextIndex creates a new SQLiteTextIndex.
func NewSQLiteTextIndex(db *gorm.DB, logger *slog.Logger) *SQLiteTextIndex {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteTextIndex{
		db:     db,
		logger: logger,
	}
}

func (s *SQLiteTextIndex) initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := s.db.WithContext(ctx).Exec(sqliteCreateFTS5Table).Error; err != nil {
		return errors.Join(ErrSQLiteTextInitializationFailed, err)
	}

	s.initialized = true
	return nil
}

// Search performs ranked full-text search, falling back to substring
// matching when FTS5 cannot parse or serve the term.
func (s *SQLiteTextIndex) Search(ctx context.Context, query search.Query) ([]search.Hit, error) {
	if err := s.initialize(ctx); err != nil {
		s.logger.Warn("fts5 unavailable, using substring fallback", "error", err)
		return likeSearch(ctx, s.db, query)
	}

	hits, err := s.match(ctx, query)
	if err != nil {
		s.logger.Warn("full-text query failed, using substring fallback",
			"term", query.Term(), "error", err)
		return likeSearch(ctx, s.db, query)
	}
	return hits, nil
}

func (s *SQLiteTextIndex) match(ctx context.Context, query search.Query) ([]search.Hit, error) {
	tx := s.db.WithContext(ctx).
		Table("gene_fts").
		Select(sqliteSearchSelect).
		Where("gene_fts MATCH ?", escapeFTS5Term(query.Term()))

	tx = applySearchFilters(tx, "gene_fts.gene_id", query.Filters())
	tx = tx.Order("score").Order("gene_id").Limit(query.Limit())

	// Use manual row scanning to ensure FTS5 UNINDEXED columns are read
	// correctly.
	sqlRows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer func() { _ = sqlRows.Close() }()

	var hits []search.Hit
	for sqlRows.Next() {
		var geneID int64
		var score float64
		var core, synonym, goTerm, trait string
		if err := sqlRows.Scan(&geneID, &score, &core, &synonym, &goTerm, &trait); err != nil {
			return nil, err
		}
		source, matched := classifySnippets(core, synonym, goTerm, trait)
		// SQLite bm25() returns negative scores (lower/more negative is
		// better). Negate so higher is better.
		hits = append(hits, search.NewHit(geneID, -score, matched, source))
	}

	if err := sqlRows.Err(); err != nil {
		return nil, err
	}

	return hits, nil
}

// Index upserts documents into the text index.
func (s *SQLiteTextIndex) Index(ctx context.Context, docs []search.Document) error {
	if err := s.initialize(ctx); err != nil {
		return err
	}

	var valid []search.Document
	for _, doc := range docs {
		if doc.GeneID() > 0 && doc.Core() != "" {
			valid = append(valid, doc)
		}
	}

	if len(valid) == 0 {
		s.logger.Warn("corpus is empty, skipping text index")
		return nil
	}

	ids := make([]int64, len(valid))
	for i, doc := range valid {
		ids[i] = doc.GeneID()
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(sqliteDeleteQuery, ids).Error; err != nil {
			return err
		}
		for _, doc := range valid {
			err := tx.Exec(sqliteInsertQuery,
				doc.GeneID(), doc.Core(), doc.Synonyms(), doc.GOTerms(), doc.Traits()).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Rebuild recomposes the whole index from the annotation tables.
func (s *SQLiteTextIndex) Rebuild(ctx context.Context) error {
	if err := s.initialize(ctx); err != nil {
		return err
	}

	docs, err := loadDocuments(ctx, s.db, sqliteComposeQuery)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(sqliteDeleteAllQuery).Error; err != nil {
			return err
		}
		for _, doc := range docs {
			err := tx.Exec(sqliteInsertQuery,
				doc.GeneID(), doc.Core(), doc.Synonyms(), doc.GOTerms(), doc.Traits()).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// DocumentCount returns the number of indexed documents.
func (s *SQLiteTextIndex) DocumentCount(ctx context.Context) (int64, error) {
	if err := s.initialize(ctx); err != nil {
		return 0, err
	}

	var count int64
	err := s.db.WithContext(ctx).Raw(sqliteCountQuery).Scan(&count).Error
	return count, err
}

// classifySnippets picks the matched-text label from the highest-precedence
// column whose snippet carries a highlight mark.
func classifySnippets(core, synonym, goTerm, trait string) (search.MatchSource, string) {
	switch {
	case strings.Contains(core, markStart):
		return search.SourceGene, stripMarks(core)
	case strings.Contains(synonym, markStart):
		return search.SourceSynonym, stripMarks(synonym)
	case strings.Contains(goTerm, markStart):
		return search.SourceGOTerm, stripMarks(goTerm)
	case strings.Contains(trait, markStart):
		return search.SourceTrait, stripMarks(trait)
	default:
		return search.SourceGene, stripMarks(core)
	}
}

// escapeFTS5Term quotes the term as a phrase with prefix matching on its
// last token. FTS5 operators (AND OR NOT ( ) * ^) lose meaning inside the
// quotes.
func escapeFTS5Term(term string) string {
	return `"` + strings.ReplaceAll(term, `"`, `""`) + `"*`
}
