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

// SQL statements for PostgreSQL native full-text search operations. The
// tsv column is trigger-maintained with per-field weights so core matches
// outrank synonym, GO term, and trait matches.
const (
	pgCreateDocumentsTable = `
CREATE TABLE IF NOT EXISTS gene_search_documents (
    gene_id BIGINT PRIMARY KEY,
    core TEXT NOT NULL DEFAULT '',
    synonyms TEXT NOT NULL DEFAULT '',
    go_terms TEXT NOT NULL DEFAULT '',
    traits TEXT NOT NULL DEFAULT '',
    tsv TSVECTOR
)`

	pgCreateTSVIndex = `
CREATE INDEX IF NOT EXISTS gene_search_documents_tsv_idx
ON gene_search_documents
USING GIN(tsv)`

	pgCreateTriggerFunction = `
CREATE OR REPLACE FUNCTION gene_search_update_tsv()
RETURNS trigger AS $$
BEGIN
    NEW.tsv := setweight(to_tsvector('english', NEW.core), 'A')
            || setweight(to_tsvector('english', NEW.synonyms), 'B')
            || setweight(to_tsvector('english', NEW.go_terms), 'C')
            || setweight(to_tsvector('english', NEW.traits), 'D');
    RETURN NEW;
END;
$$ LANGUAGE plpgsql`

	pgCreateTrigger = `
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_trigger WHERE tgname = 'gene_search_tsv_trigger'
    ) THEN
        CREATE TRIGGER gene_search_tsv_trigger
        BEFORE INSERT OR UPDATE ON gene_search_documents
        FOR EACH ROW EXECUTE FUNCTION gene_search_update_tsv();
    END IF;
END;
$$`

	pgInsertQuery = `
INSERT INTO gene_search_documents (gene_id, core, synonyms, go_terms, traits)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (gene_id) DO UPDATE
SET core = EXCLUDED.core,
    synonyms = EXCLUDED.synonyms,
    go_terms = EXCLUDED.go_terms,
    traits = EXCLUDED.traits`

	pgDeleteAllQuery = `DELETE FROM gene_search_documents`

	pgCountQuery = `SELECT COUNT(*) FROM gene_search_documents`

	pgComposeQuery = `
SELECT g.id AS gene_id,
       g.symbol || ' ' || g.name || ' ' || COALESCE(g.description, '') || ' ' || g.gene_type AS core,
       COALESCE((SELECT string_agg(s.synonym, ' ') FROM gene_synonyms s WHERE s.gene_id = g.id), '') AS synonyms,
       COALESCE((SELECT string_agg(a.term, ' ') FROM go_annotations a WHERE a.gene_id = g.id), '') AS go_terms,
       COALESCE((SELECT string_agg(t.trait, ' ') FROM trait_associations t WHERE t.gene_id = g.id), '') AS traits
FROM genes g`

	pgSearchSelect = `gene_id,
ts_rank_cd(tsv, plainto_tsquery('english', ?)) AS score,
to_tsvector('english', core) @@ plainto_tsquery('english', ?) AS core_match,
to_tsvector('english', synonyms) @@ plainto_tsquery('english', ?) AS synonym_match,
to_tsvector('english', go_terms) @@ plainto_tsquery('english', ?) AS go_term_match,
ts_headline('english',
    CASE
        WHEN to_tsvector('english', core) @@ plainto_tsquery('english', ?) THEN core
        WHEN to_tsvector('english', synonyms) @@ plainto_tsquery('english', ?) THEN synonyms
        WHEN to_tsvector('english', go_terms) @@ plainto_tsquery('english', ?) THEN go_terms
        ELSE traits
    END,
    plainto_tsquery('english', ?),
    'StartSel=[[, StopSel=]], MaxWords=12, MinWords=4') AS matched`
)

// ErrPostgresTextInitializationFailed indicates PostgreSQL full-text
// initialization failed.
var ErrPostgresTextInitializationFailed = errors.New("failed to initialize PostgreSQL text index")

// PostgresTextIndex implements search.TextIndex using PostgreSQL native
// full-text search.
type PostgresTextIndex struct {
	db          *gorm.DB
	logger      *slog.Logger
	initialized bool
	mu          sync.Mutex
}

// NewPostgresTextIndex creates a new PostgresTextIndex.
func NewPostgresTextIndex(db *gorm.DB, logger *slog.Logger) *PostgresTextIndex {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTextIndex{
		db:     db,
		logger: logger,
	}
}

func (s *PostgresTextIndex) initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	db := s.db.WithContext(ctx)
	for _, stmt := range []string{
		pgCreateDocumentsTable,
		pgCreateTSVIndex,
		pgCreateTriggerFunction,
		pgCreateTrigger,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			return errors.Join(ErrPostgresTextInitializationFailed, err)
		}
	}

	s.initialized = true
	return nil
}

// Search performs ranked full-text search, falling back to substring
// matching when the query cannot be served.
func (s *PostgresTextIndex) Search(ctx context.Context, query search.Query) ([]search.Hit, error) {
	if err := s.initialize(ctx); err != nil {
		return nil, err
	}

	hits, err := s.match(ctx, query)
	if err != nil {
		s.logger.Warn("full-text query failed, using substring fallback",
			"term", query.Term(), "error", err)
		return likeSearch(ctx, s.db, query)
	}
	return hits, nil
}

func (s *PostgresTextIndex) match(ctx context.Context, query search.Query) ([]search.Hit, error) {
	term := sanitizeQuery(query.Term())

	tx := s.db.WithContext(ctx).
		Table("gene_search_documents").
		Select(pgSearchSelect, term, term, term, term, term, term, term, term).
		Where("tsv @@ plainto_tsquery('english', ?)", term)

	tx = applySearchFilters(tx, "gene_search_documents.gene_id", query.Filters())
	tx = tx.Order("score DESC").Order("gene_id").Limit(query.Limit())

	var rows []struct {
		GeneID       int64   `gorm:"column:gene_id"`
		Score        float64 `gorm:"column:score"`
		CoreMatch    bool    `gorm:"column:core_match"`
		SynonymMatch bool    `gorm:"column:synonym_match"`
		GOTermMatch  bool    `gorm:"column:go_term_match"`
		Matched      string  `gorm:"column:matched"`
	}
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, err
	}

	hits := make([]search.Hit, len(rows))
	for i, row := range rows {
		source := search.SourceTrait
		switch {
		case row.CoreMatch:
			source = search.SourceGene
		case row.SynonymMatch:
			source = search.SourceSynonym
		case row.GOTermMatch:
			source = search.SourceGOTerm
		}
		hits[i] = search.NewHit(row.GeneID, row.Score, stripMarks(row.Matched), source)
	}

	return hits, nil
}

// Index upserts documents into the text index.
func (s *PostgresTextIndex) Index(ctx context.Context, docs []search.Document) error {
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

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, doc := range valid {
			err := tx.Exec(pgInsertQuery,
				doc.GeneID(), doc.Core(), doc.Synonyms(), doc.GOTerms(), doc.Traits()).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Rebuild recomposes the whole index from the annotation tables.
func (s *PostgresTextIndex) Rebuild(ctx context.Context) error {
	if err := s.initialize(ctx); err != nil {
		return err
	}

	docs, err := loadDocuments(ctx, s.db, pgComposeQuery)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(pgDeleteAllQuery).Error; err != nil {
			return err
		}
		for _, doc := range docs {
			err := tx.Exec(pgInsertQuery,
				doc.GeneID(), doc.Core(), doc.Synonyms(), doc.GOTerms(), doc.Traits()).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// DocumentCount returns the number of indexed documents.
func (s *PostgresTextIndex) DocumentCount(ctx context.Context) (int64, error) {
	if err := s.initialize(ctx); err != nil {
		return 0, err
	}

	var count int64
	err := s.db.WithContext(ctx).Raw(pgCountQuery).Scan(&count).Error
	return count, err
}

// sanitizeQuery strips characters plainto_tsquery treats as syntax.
func sanitizeQuery(query string) string {
	replacer := strings.NewReplacer(
		"'", " ",
		"\"", " ",
		"(", " ",
		")", " ",
		":", " ",
		"!", " ",
		"&", " ",
		"|", " ",
	)
	return replacer.Replace(query)
}
