package persistence

import (
	"context"
	"fmt"

	"github.com/genomelab/genedex/domain/gene"
	"github.com/genomelab/genedex/domain/storage"
	"github.com/genomelab/genedex/internal/database"
)

// GeneStore implements gene.GeneStore using GORM.
type GeneStore struct {
	database.Repository[gene.Gene, GeneModel]
}

// NewGeneStore creates a new GeneStore.
func NewGeneStore(db database.Database) GeneStore {
	return GeneStore{
		Repository: database.NewRepository[gene.Gene, GeneModel](db, GeneMapper{}, "gene"),
	}
}

// FindByID returns the gene with the given id.
func (s GeneStore) FindByID(ctx context.Context, geneID int64) (gene.Gene, error) {
	return s.FindOne(ctx, storage.WithCondition("id", geneID))
}

// FindByChromosome returns every gene of a species on a chromosome, in
// symbol order so repeated calls produce identical layouts.
func (s GeneStore) FindByChromosome(ctx context.Context, taxID int64, chromosome string) ([]gene.Gene, error) {
	return s.Find(ctx,
		storage.WithTaxID(taxID),
		storage.WithChromosome(chromosome),
		storage.WithOrderAsc("symbol"),
		storage.WithOrderAsc("id"),
	)
}

// ListChromosomes returns the chromosome inventory for a species. Rows
// without a chromosome label are skipped; ordering is left to callers.
func (s GeneStore) ListChromosomes(ctx context.Context, taxID int64) ([]gene.ChromosomeCount, error) {
	type row struct {
		Chromosome string
		Total      int64
	}

	var rows []row
	err := s.DB(ctx).
		Model(&GeneModel{}).
		Select("chromosome, COUNT(*) AS total").
		Where("tax_id = ?", taxID).
		Where("chromosome != ''").
		Group("chromosome").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list chromosomes: %w", err)
	}

	counts := make([]gene.ChromosomeCount, len(rows))
	for i, r := range rows {
		counts[i] = gene.NewChromosomeCount(r.Chromosome, r.Total)
	}
	return counts, nil
}

// Region returns genes whose map location starts with chromosome+band, in
// map-location order, capped by limit.
func (s GeneStore) Region(ctx context.Context, taxID int64, chromosome, band string, limit int) ([]gene.Gene, error) {
	return s.Find(ctx,
		storage.WithTaxID(taxID),
		storage.WithChromosome(chromosome),
		storage.WithLocationPrefix(chromosome+band),
		storage.WithOrderAsc("map_location"),
		storage.WithOrderAsc("symbol"),
		storage.WithLimit(limit),
	)
}
