package search

import (
	"fmt"

	"github.com/genomelab/genedex/domain/gene"
	"github.com/genomelab/genedex/domain/search"
	"gorm.io/gorm"
)

// Constraint tier thresholds. Tiers are recomputed from these fixed values
// on every query, never stored.
const (
	essentialPLI   = 0.9
	tolerantMaxPLI = 0.5
	constrainedLF  = 0.35
)

// applySearchFilters adds WHERE clauses to a GORM query based on search
// filters. geneID is the qualified gene-id column of the calling table;
// every condition runs as a subquery against the annotation tables, so the
// same fragment serves the full-text tables and the genes table itself.
func applySearchFilters(db *gorm.DB, geneID string, filters search.Filters) *gorm.DB {
	if filters.IsEmpty() {
		return db
	}

	if taxID := filters.TaxID(); taxID != 0 {
		db = db.Where(fmt.Sprintf(
			"%s IN (SELECT g.id FROM genes g WHERE g.tax_id = ?)", geneID), taxID)
	}
	if chromosome := filters.Chromosome(); chromosome != "" {
		db = db.Where(fmt.Sprintf(
			"%s IN (SELECT g.id FROM genes g WHERE g.chromosome = ?)", geneID), chromosome)
	}

	switch filters.ConstraintTier() {
	case search.TierEssential:
		db = db.Where(fmt.Sprintf(
			"EXISTS (SELECT 1 FROM constraint_metrics c WHERE c.gene_id = %s AND c.pli > ?)", geneID), essentialPLI)
	case search.TierConstrained:
		db = db.Where(fmt.Sprintf(
			"EXISTS (SELECT 1 FROM constraint_metrics c WHERE c.gene_id = %s AND c.loeuf < ?)", geneID), constrainedLF)
	case search.TierTolerant:
		db = db.Where(fmt.Sprintf(
			"NOT EXISTS (SELECT 1 FROM constraint_metrics c WHERE c.gene_id = %s AND c.pli > ?)", geneID), tolerantMaxPLI)
	}

	pathogenic := fmt.Sprintf(
		"EXISTS (SELECT 1 FROM clinical_summaries cs WHERE cs.gene_id = %s AND cs.pathogenic_alleles > 0)", geneID)
	gwas := fmt.Sprintf(
		"EXISTS (SELECT 1 FROM trait_associations t WHERE t.gene_id = %s)", geneID)
	switch filters.ClinicalBucket() {
	case search.BucketPathogenic:
		db = db.Where(pathogenic)
	case search.BucketGWAS:
		db = db.Where(gwas)
	case search.BucketDisease:
		db = db.Where("(" + pathogenic + " OR " + gwas + ")")
	}

	inGenes := fmt.Sprintf("%s IN (SELECT g.id FROM genes g WHERE ", geneID)
	switch filters.GeneType() {
	case search.TypeProteinCoding:
		db = db.Where(inGenes+"g.gene_type = ?)", string(search.TypeProteinCoding))
	case search.TypePseudo:
		db = db.Where(inGenes + "g.gene_type LIKE '%pseudo%')")
	case search.TypeNonCodingRNA:
		db = db.Where(inGenes + "g.gene_type LIKE '%RNA%')")
	case search.TypeOther:
		db = db.Where(inGenes + "g.gene_type <> 'protein-coding' AND g.gene_type NOT LIKE '%pseudo%' AND g.gene_type NOT LIKE '%RNA%')")
	}

	switch goFilter := filters.GOFilter(); goFilter {
	case search.GOAny:
		db = db.Where(fmt.Sprintf(
			"EXISTS (SELECT 1 FROM go_annotations a WHERE a.gene_id = %s)", geneID))
	case search.GOFunction, search.GOProcess, search.GOComponent:
		if category, err := gene.ParseGOCategory(string(goFilter)); err == nil {
			db = db.Where(fmt.Sprintf(
				"EXISTS (SELECT 1 FROM go_annotations a WHERE a.gene_id = %s AND a.category = ?)", geneID), string(category))
		}
	}

	return db
}
