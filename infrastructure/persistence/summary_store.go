package persistence

import (
	"context"

	"github.com/genomelab/genedex/domain/gene"
	"github.com/genomelab/genedex/domain/storage"
	"github.com/genomelab/genedex/internal/database"
)

// SummaryStore implements gene.SummaryStore using GORM.
type SummaryStore struct {
	database.Repository[gene.FunctionalSummary, GeneSummaryModel]
}

// NewSummaryStore creates a new SummaryStore.
func NewSummaryStore(db database.Database) SummaryStore {
	return SummaryStore{
		Repository: database.NewRepository[gene.FunctionalSummary, GeneSummaryModel](db, GeneSummaryMapper{}, "functional summary"),
	}
}

// ByGene returns the gene's functional summary.
func (s SummaryStore) ByGene(ctx context.Context, geneID int64) (gene.FunctionalSummary, error) {
	return s.FindOne(ctx, storage.WithGeneID(geneID))
}
