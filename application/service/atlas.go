package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/genomelab/genedex/domain/gene"
	"github.com/genomelab/genedex/domain/layout"
	"github.com/genomelab/genedex/internal/database"
	"golang.org/x/sync/singleflight"
)

// regionLimit caps band-region gene listings.
const regionLimit = 500

// ChromosomeView bundles the layout of one chromosome with the flat gene
// list that backs it. The gene list carries every gene regardless of the
// layout's visible cap.
type ChromosomeView struct {
	record layout.Record
	genes  []gene.Gene
}

// Layout returns the computed chromosome layout.
func (v ChromosomeView) Layout() layout.Record { return v.record }

// Genes returns every gene on the chromosome in store order.
func (v ChromosomeView) Genes() []gene.Gene {
	result := make([]gene.Gene, len(v.genes))
	copy(result, v.genes)
	return result
}

// Atlas serves the browsing surfaces: species catalog, chromosome
// inventories, chromosome views, and band regions. Chromosome gene lists
// are cached per species+chromosome behind a singleflight group so
// concurrent identical loads hit the store once.
type Atlas struct {
	genes        gene.GeneStore
	species      gene.SpeciesStore
	cacheEnabled bool
	group        singleflight.Group
	mu           sync.RWMutex
	cache        map[string][]gene.Gene
	closed       *atomic.Bool
	logger       *slog.Logger
}

// NewAtlas creates a new Atlas service.
func NewAtlas(
	genes gene.GeneStore,
	species gene.SpeciesStore,
	cacheEnabled bool,
	closed *atomic.Bool,
	logger *slog.Logger,
) *Atlas {
	if logger == nil {
		logger = slog.Default()
	}
	return &Atlas{
		genes:        genes,
		species:      species,
		cacheEnabled: cacheEnabled,
		cache:        make(map[string][]gene.Gene),
		closed:       closed,
		logger:       logger,
	}
}

// Species returns the catalog entries with at least one gene, gene-count
// descending.
func (s *Atlas) Species(ctx context.Context) ([]gene.Species, error) {
	if s.closed != nil && s.closed.Load() {
		return nil, ErrClientClosed
	}

	species, err := s.species.ListPopulated(ctx)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return species, nil
}

// Chromosomes returns the chromosome inventory of one species in display
// order (numeric, X=23, Y=24, MT=25, others last).
func (s *Atlas) Chromosomes(ctx context.Context, taxID int64) ([]gene.ChromosomeCount, error) {
	if s.closed != nil && s.closed.Load() {
		return nil, ErrClientClosed
	}
	if taxID <= 0 {
		return nil, fmt.Errorf("taxonomy id %d: %w", taxID, ErrInvalidArgument)
	}

	if _, err := s.species.FindByTaxID(ctx, taxID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("species %d: %w", taxID, ErrNotFound)
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	counts, err := s.genes.ListChromosomes(ctx, taxID)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	gene.SortChromosomes(counts)
	return counts, nil
}

// ChromosomeView returns the layout of one chromosome with the given genes
// highlighted. The gene list load is cached; the layout is recomputed per
// request because highlights and zoom vary per caller.
func (s *Atlas) ChromosomeView(
	ctx context.Context,
	taxID int64,
	chromosome string,
	highlightedIDs []int64,
	zoom float64,
) (ChromosomeView, error) {
	if s.closed != nil && s.closed.Load() {
		return ChromosomeView{}, ErrClientClosed
	}
	if taxID <= 0 {
		return ChromosomeView{}, fmt.Errorf("taxonomy id %d: %w", taxID, ErrInvalidArgument)
	}
	if chromosome == "" {
		return ChromosomeView{}, fmt.Errorf("empty chromosome: %w", ErrInvalidArgument)
	}
	if zoom < 0 {
		return ChromosomeView{}, fmt.Errorf("zoom %v: %w", zoom, ErrInvalidArgument)
	}

	genes, err := s.loadChromosome(ctx, taxID, chromosome)
	if err != nil {
		return ChromosomeView{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(genes) == 0 {
		return ChromosomeView{}, fmt.Errorf("chromosome %q of species %d: %w", chromosome, taxID, ErrNotFound)
	}

	return ChromosomeView{
		record: layout.Compute(genes, highlightedIDs, zoom),
		genes:  genes,
	}, nil
}

// Region returns genes whose map location starts with chromosome+band,
// map-location order, capped at 500.
func (s *Atlas) Region(ctx context.Context, taxID int64, chromosome, band string) ([]gene.Gene, error) {
	if s.closed != nil && s.closed.Load() {
		return nil, ErrClientClosed
	}
	if taxID <= 0 {
		return nil, fmt.Errorf("taxonomy id %d: %w", taxID, ErrInvalidArgument)
	}
	if chromosome == "" {
		return nil, fmt.Errorf("empty chromosome: %w", ErrInvalidArgument)
	}
	if band == "" {
		return nil, fmt.Errorf("empty band: %w", ErrInvalidArgument)
	}

	genes, err := s.genes.Region(ctx, taxID, chromosome, band, regionLimit)
	if err != nil {
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return genes, nil
}

// InvalidateCache drops every cached chromosome gene list.
func (s *Atlas) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string][]gene.Gene)
}

func (s *Atlas) loadChromosome(ctx context.Context, taxID int64, chromosome string) ([]gene.Gene, error) {
	if !s.cacheEnabled {
		return s.genes.FindByChromosome(ctx, taxID, chromosome)
	}

	key := fmt.Sprintf("%d:%s", taxID, chromosome)

	s.mu.RLock()
	cached, ok := s.cache[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	// The winning caller's context governs the shared load.
	result, err, _ := s.group.Do(key, func() (any, error) {
		genes, err := s.genes.FindByChromosome(ctx, taxID, chromosome)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.cache[key] = genes
		s.mu.Unlock()
		return genes, nil
	})
	if err != nil {
		return nil, err
	}

	genes, ok := result.([]gene.Gene)
	if !ok {
		return nil, fmt.Errorf("unexpected cache entry type %T", result)
	}
	return genes, nil
}
