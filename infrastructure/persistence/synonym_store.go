package persistence

import (
	"context"

	"github.com/genomelab/genedex/domain/storage"
	"github.com/genomelab/genedex/internal/database"
)

// SynonymStore implements gene.SynonymStore using GORM.
type SynonymStore struct {
	database.Repository[string, SynonymModel]
}

// NewSynonymStore creates a new SynonymStore.
func NewSynonymStore(db database.Database) SynonymStore {
	return SynonymStore{
		Repository: database.NewRepository[string, SynonymModel](db, SynonymMapper{}, "synonym"),
	}
}

// ListByGene returns a gene's synonyms in store order.
func (s SynonymStore) ListByGene(ctx context.Context, geneID int64) ([]string, error) {
	return s.Find(ctx,
		storage.WithGeneID(geneID),
		storage.WithOrderAsc("id"),
	)
}
