package persistence

import (
	"context"
	"fmt"

	"github.com/genomelab/genedex/domain/gene"
	"github.com/genomelab/genedex/domain/storage"
	"github.com/genomelab/genedex/internal/database"
)

// SpeciesStore implements gene.SpeciesStore using GORM.
type SpeciesStore struct {
	database.Repository[gene.Species, SpeciesModel]
}

// NewSpeciesStore creates a new SpeciesStore.
func NewSpeciesStore(db database.Database) SpeciesStore {
	return SpeciesStore{
		Repository: database.NewRepository[gene.Species, SpeciesModel](db, SpeciesMapper{}, "species"),
	}
}

// FindByTaxID returns the species with the given taxonomy id.
func (s SpeciesStore) FindByTaxID(ctx context.Context, taxID int64) (gene.Species, error) {
	return s.FindOne(ctx, storage.WithTaxID(taxID))
}

// ListPopulated returns species with at least one gene, gene-count
// descending.
func (s SpeciesStore) ListPopulated(ctx context.Context) ([]gene.Species, error) {
	return s.Find(ctx,
		storage.WithWhere("gene_count > ?", 0),
		storage.WithOrderDesc("gene_count"),
		storage.WithOrderAsc("tax_id"),
	)
}

// Save creates or updates a catalog entry.
func (s SpeciesStore) Save(ctx context.Context, species gene.Species) (gene.Species, error) {
	model := s.Mapper().ToModel(species)
	if result := s.DB(ctx).Save(&model); result.Error != nil {
		return gene.Species{}, fmt.Errorf("save species: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}
