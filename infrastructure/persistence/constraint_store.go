package persistence

import (
	"context"
	"fmt"

	"github.com/genomelab/genedex/domain/gene"
	"github.com/genomelab/genedex/internal/database"
)

// versionRank prefers the newest constraint source version. Unknown tags
// rank last so a future release does not silently displace known data.
const versionRank = `CASE version WHEN 'v4.1' THEN 1 WHEN 'v2.1.1' THEN 2 ELSE 3 END`

// ConstraintStore implements gene.ConstraintStore using GORM.
type ConstraintStore struct {
	database.Repository[gene.ConstraintMetrics, ConstraintModel]
}

// NewConstraintStore creates a new ConstraintStore.
func NewConstraintStore(db database.Database) ConstraintStore {
	return ConstraintStore{
		Repository: database.NewRepository[gene.ConstraintMetrics, ConstraintModel](db, ConstraintMapper{}, "constraint metrics"),
	}
}

// LatestByGene returns the gene's metrics from the newest source version.
func (s ConstraintStore) LatestByGene(ctx context.Context, geneID int64) (gene.ConstraintMetrics, error) {
	q := database.NewQuery().
		Equal("gene_id", geneID).
		OrderExpr(versionRank).
		Limit(1)

	var models []ConstraintModel
	if err := q.Apply(s.DB(ctx).Model(&ConstraintModel{})).Find(&models).Error; err != nil {
		return gene.ConstraintMetrics{}, fmt.Errorf("find constraint metrics: %w", err)
	}
	if len(models) == 0 {
		return gene.ConstraintMetrics{}, fmt.Errorf("%w: constraint metrics", database.ErrNotFound)
	}
	return s.Mapper().ToDomain(models[0]), nil
}
