package persistence

import (
	"context"

	"github.com/genomelab/genedex/domain/gene"
	"github.com/genomelab/genedex/domain/storage"
	"github.com/genomelab/genedex/internal/database"
)

// AnnotationStore implements gene.AnnotationStore using GORM.
type AnnotationStore struct {
	database.Repository[gene.Annotation, AnnotationModel]
}

// NewAnnotationStore creates a new AnnotationStore.
func NewAnnotationStore(db database.Database) AnnotationStore {
	return AnnotationStore{
		Repository: database.NewRepository[gene.Annotation, AnnotationModel](db, AnnotationMapper{}, "annotation"),
	}
}

// ListByGene returns a gene's annotations ordered by category then term.
// This is the store order the detail aggregation preserves.
func (s AnnotationStore) ListByGene(ctx context.Context, geneID int64) ([]gene.Annotation, error) {
	return s.Find(ctx,
		storage.WithGeneID(geneID),
		storage.WithOrderAsc("category"),
		storage.WithOrderAsc("term"),
		storage.WithOrderAsc("id"),
	)
}
