package persistence

import (
	"context"
	"fmt"

	"github.com/genomelab/genedex/domain/gene"
	"github.com/genomelab/genedex/domain/storage"
	"github.com/genomelab/genedex/internal/database"
)

// TraitStore implements gene.TraitStore using GORM.
type TraitStore struct {
	database.Repository[gene.TraitAssociation, TraitModel]
}

// NewTraitStore creates a new TraitStore.
func NewTraitStore(db database.Database) TraitStore {
	return TraitStore{
		Repository: database.NewRepository[gene.TraitAssociation, TraitModel](db, TraitMapper{}, "trait association"),
	}
}

// TopByGene returns up to limit associations, ascending p-value with absent
// p-values last. The IS NULL key sorts false before true in both dialects.
func (s TraitStore) TopByGene(ctx context.Context, geneID int64, limit int) ([]gene.TraitAssociation, error) {
	q := database.NewQuery().
		Equal("gene_id", geneID).
		OrderExpr("p_value IS NULL, p_value").
		OrderAsc("id").
		Limit(limit)

	var models []TraitModel
	if err := q.Apply(s.DB(ctx).Model(&TraitModel{})).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("find top trait associations: %w", err)
	}

	traits := make([]gene.TraitAssociation, len(models))
	for i, m := range models {
		traits[i] = s.Mapper().ToDomain(m)
	}
	return traits, nil
}

// CountByGene returns the true association count.
func (s TraitStore) CountByGene(ctx context.Context, geneID int64) (int64, error) {
	return s.Count(ctx, storage.WithGeneID(geneID))
}
