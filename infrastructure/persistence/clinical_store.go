package persistence

import (
	"context"
	"fmt"

	"github.com/genomelab/genedex/domain/gene"
	"github.com/genomelab/genedex/domain/storage"
	"github.com/genomelab/genedex/internal/database"
)

// reviewStatusRank orders variants by the archive's review confidence.
// This is the documented store order behind TopVariants; the aggregation
// layer never re-sorts.
const reviewStatusRank = `CASE review_status
WHEN 'practice guideline' THEN 1
WHEN 'reviewed by expert panel' THEN 2
WHEN 'criteria provided, multiple submitters, no conflicts' THEN 3
WHEN 'criteria provided, single submitter' THEN 4
ELSE 5 END`

// ClinicalStore implements gene.ClinicalStore using GORM. The per-gene
// summary goes through the generic repository; variants use their own
// mapper against the clinical_variants table.
type ClinicalStore struct {
	database.Repository[gene.ClinicalSummary, ClinicalSummaryModel]
	variantMapper ClinicalVariantMapper
}

// NewClinicalStore creates a new ClinicalStore.
func NewClinicalStore(db database.Database) ClinicalStore {
	return ClinicalStore{
		Repository: database.NewRepository[gene.ClinicalSummary, ClinicalSummaryModel](db, ClinicalSummaryMapper{}, "clinical summary"),
	}
}

// SummaryByGene returns the gene's bucketed allele counts.
func (s ClinicalStore) SummaryByGene(ctx context.Context, geneID int64) (gene.ClinicalSummary, error) {
	return s.FindOne(ctx, storage.WithGeneID(geneID))
}

// TopVariants returns up to limit variants, review-status weight then
// significance text.
func (s ClinicalStore) TopVariants(ctx context.Context, geneID int64, limit int) ([]gene.ClinicalVariant, error) {
	q := database.NewQuery().
		Equal("gene_id", geneID).
		OrderExpr(reviewStatusRank).
		OrderAsc("significance").
		OrderAsc("allele_id").
		Limit(limit)

	var models []ClinicalVariantModel
	if err := q.Apply(s.DB(ctx).Model(&ClinicalVariantModel{})).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("find clinical variants: %w", err)
	}

	variants := make([]gene.ClinicalVariant, len(models))
	for i, m := range models {
		variants[i] = s.variantMapper.ToDomain(m)
	}
	return variants, nil
}
