// Package genedex provides a library for gene search, annotation
// aggregation, and chromosome browsing.
//
// Genedex stores a gene catalog with its annotation sources (GO terms,
// GWAS traits, constraint metrics, clinical variants) and provides ranked
// full-text search, aggregated per-gene detail records, and schematic
// chromosome layouts.
//
// Basic usage:
//
//	client, err := genedex.New(
//	    genedex.WithSQLite(".genedex/genedex.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Ranked search
//	items, err := client.Search.Query(ctx, "insulin",
//	    service.WithSpecies(9606),
//	    service.WithLimit(10),
//	)
//
//	// Aggregated gene record
//	detail, err := client.Genes.Detail(ctx, 3630)
//
//	// Chromosome layout
//	view, err := client.Atlas.ChromosomeView(ctx, 9606, "11", nil, 1.0)
package genedex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/genomelab/genedex/application/service"
	"github.com/genomelab/genedex/infrastructure/persistence"
	textindex "github.com/genomelab/genedex/infrastructure/search"
	"github.com/genomelab/genedex/internal/config"
	"github.com/genomelab/genedex/internal/database"
)

// Client is the main entry point for the genedex library.
//
// Access resources via struct fields:
//
//	client.Search.Query(ctx, "insulin")
//	client.Genes.Detail(ctx, geneID)
//	client.Atlas.Chromosomes(ctx, 9606)
type Client struct {
	// Public resource fields (direct service access)
	Search *service.Search
	Genes  *service.Genes
	Atlas  *service.Atlas

	db      database.Database
	logger  *slog.Logger
	dataDir string
	closed  atomic.Bool
}

// New creates a new Client with the given options.
// A database option (WithSQLite or WithPostgres) is required.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.database == databaseUnset {
		return nil, ErrNoDatabase
	}

	// Set up logger
	logger := cfg.logger
	if logger == nil {
		logger = config.DefaultLogger()
	}

	// Set up data directory
	dataDir, err := config.PrepareDataDir(cfg.dataDir)
	if err != nil {
		return nil, err
	}

	// Build database URL
	ctx := context.Background()
	dbURL, err := buildDatabaseURL(cfg)
	if err != nil {
		return nil, fmt.Errorf("build database url: %w", err)
	}

	// Open database
	db, err := database.NewDatabase(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Run auto migration
	if err := persistence.AutoMigrate(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
	}

	// Validate schema matches GORM models
	if err := persistence.ValidateSchema(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("validate schema: %w", err), errClose)
	}

	// Seed the species catalog into an empty store so a fresh deployment
	// can resolve taxonomy ids before any gene data is loaded.
	seeded, err := persistence.SeedSpecies(ctx, db)
	if err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("seed species: %w", err), errClose)
	}
	if seeded > 0 {
		logger.Info("seeded species catalog", slog.Int("count", seeded))
	}

	// Create stores
	geneStore := persistence.NewGeneStore(db)
	speciesStore := persistence.NewSpeciesStore(db)
	synonymStore := persistence.NewSynonymStore(db)
	summaryStore := persistence.NewSummaryStore(db)
	annotationStore := persistence.NewAnnotationStore(db)
	traitStore := persistence.NewTraitStore(db)
	constraintStore := persistence.NewConstraintStore(db)
	clinicalStore := persistence.NewClinicalStore(db)
	displayStore := persistence.NewDisplayStore(db)

	// Create the text index for the active dialect. On SQLite this builds
	// the FTS5 table and populates it from the gene catalog when empty.
	index, err := textindex.NewTextIndex(ctx, db, logger)
	if err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("text index: %w", err), errClose)
	}

	client := &Client{
		db:      db,
		logger:  logger,
		dataDir: dataDir,
	}

	// Initialize service fields directly
	client.Search = service.NewSearch(index, displayStore, cfg.searchLimit, &client.closed, logger)
	client.Genes = service.NewGenes(
		geneStore, speciesStore, synonymStore, summaryStore,
		annotationStore, traitStore, constraintStore, clinicalStore,
		&client.closed, logger,
	)
	client.Atlas = service.NewAtlas(geneStore, speciesStore, cfg.cacheEnabled, &client.closed, logger)

	return client, nil
}

// Close releases all resources. Service calls after Close return
// ErrClientClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}

	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	c.logger.Info("genedex client closed")
	return nil
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// DataDir returns the resolved data directory.
func (c *Client) DataDir() string {
	return c.dataDir
}

// buildDatabaseURL constructs the database URL from configuration.
func buildDatabaseURL(cfg *clientConfig) (string, error) {
	switch cfg.database {
	case databaseSQLite:
		return "sqlite://" + cfg.dbPath, nil
	case databasePostgres:
		return cfg.dbDSN, nil
	default:
		return "", ErrNoDatabase
	}
}
