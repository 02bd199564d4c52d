// Package service provides application layer services that orchestrate
// domain operations.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/genomelab/genedex/domain/search"
	"github.com/genomelab/genedex/internal/config"
)

// QueryOption configures a search request.
type QueryOption func(*queryConfig)

// queryConfig holds search parameters.
type queryConfig struct {
	filters []search.FiltersOption
	limit   int
}

func newQueryConfig(limit int) *queryConfig {
	if limit <= 0 {
		limit = config.DefaultSearchLimit
	}
	return &queryConfig{limit: limit}
}

// WithSpecies restricts results to one species by taxonomy id.
func WithSpecies(taxID int64) QueryOption {
	return func(c *queryConfig) {
		if taxID > 0 {
			c.filters = append(c.filters, search.WithSpecies(taxID))
		}
	}
}

// WithChromosome restricts results to one chromosome label.
func WithChromosome(chromosome string) QueryOption {
	return func(c *queryConfig) {
		if chromosome != "" {
			c.filters = append(c.filters, search.WithChromosome(chromosome))
		}
	}
}

// WithConstraintTier restricts results by constraint tier.
func WithConstraintTier(tier search.ConstraintTier) QueryOption {
	return func(c *queryConfig) {
		if tier != "" {
			c.filters = append(c.filters, search.WithConstraintTier(tier))
		}
	}
}

// WithClinicalBucket restricts results by clinical evidence bucket.
func WithClinicalBucket(bucket search.ClinicalBucket) QueryOption {
	return func(c *queryConfig) {
		if bucket != "" {
			c.filters = append(c.filters, search.WithClinicalBucket(bucket))
		}
	}
}

// WithGeneType restricts results by gene type class.
func WithGeneType(class search.GeneTypeClass) QueryOption {
	return func(c *queryConfig) {
		if class != "" {
			c.filters = append(c.filters, search.WithGeneType(class))
		}
	}
}

// WithGOFilter restricts results by GO annotation coverage.
func WithGOFilter(filter search.GOFilter) QueryOption {
	return func(c *queryConfig) {
		if filter != "" {
			c.filters = append(c.filters, search.WithGOFilter(filter))
		}
	}
}

// WithLimit caps the number of results. Values above the hard ceiling are
// clamped by the domain query.
func WithLimit(n int) QueryOption {
	return func(c *queryConfig) {
		if n > 0 {
			c.limit = n
		}
	}
}

// Search orchestrates full-text gene search: term validation, index query,
// and display-row assembly.
type Search struct {
	index   search.TextIndex
	display search.DisplayStore
	limit   int
	closed  *atomic.Bool
	logger  *slog.Logger
}

// NewSearch creates a new Search service. limit is the default result cap
// applied when a query does not set its own.
func NewSearch(
	index search.TextIndex,
	display search.DisplayStore,
	limit int,
	closed *atomic.Bool,
	logger *slog.Logger,
) *Search {
	if logger == nil {
		logger = slog.Default()
	}
	return &Search{
		index:   index,
		display: display,
		limit:   limit,
		closed:  closed,
		logger:  logger,
	}
}

// Query performs a ranked gene search. The term must be non-empty after
// trimming; validation happens before any store call. Results are
// deduplicated by gene id and ordered by score descending, gene id
// ascending.
func (s *Search) Query(ctx context.Context, term string, opts ...QueryOption) ([]search.Item, error) {
	if s.closed != nil && s.closed.Load() {
		return nil, ErrClientClosed
	}

	cfg := newQueryConfig(s.limit)
	for _, opt := range opts {
		opt(cfg)
	}

	query, err := search.NewQuery(term, search.NewFilters(cfg.filters...), cfg.limit)
	if err != nil {
		return nil, errors.Join(ErrInvalidArgument, err)
	}

	hits, err := s.index.Search(ctx, query)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	search.SortHits(hits)
	hits = search.Dedupe(hits)

	if len(hits) == 0 {
		return []search.Item{}, nil
	}

	ids := make([]int64, len(hits))
	for i, hit := range hits {
		ids[i] = hit.GeneID()
	}

	rows, err := s.display.DisplayRows(ctx, ids)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	items := make([]search.Item, 0, len(hits))
	for _, hit := range hits {
		row, ok := rows[hit.GeneID()]
		if !ok {
			// The index can briefly reference genes deleted from the core
			// table; such hits are dropped rather than half-rendered.
			s.logger.Warn("search hit has no display row", "gene_id", hit.GeneID())
			continue
		}
		items = append(items, search.NewItem(row, hit))
	}

	return items, nil
}
