package gene

import (
	"context"

	"github.com/genomelab/genedex/domain/storage"
)

// GeneStore defines lookups over the core gene table.
type GeneStore interface {
	storage.Store[Gene]

	// FindByID returns the gene with the given id.
	FindByID(ctx context.Context, geneID int64) (Gene, error)

	// FindByChromosome returns every gene of a species on a chromosome.
	FindByChromosome(ctx context.Context, taxID int64, chromosome string) ([]Gene, error)

	// ListChromosomes returns the chromosome inventory for a species,
	// unordered; callers apply display ordering.
	ListChromosomes(ctx context.Context, taxID int64) ([]ChromosomeCount, error)

	// Region returns genes whose map location starts with chromosome+band,
	// in map-location order, capped by limit.
	Region(ctx context.Context, taxID int64, chromosome, band string, limit int) ([]Gene, error)
}

// SpeciesStore defines lookups over the species catalog.
type SpeciesStore interface {
	storage.Store[Species]

	// FindByTaxID returns the species with the given taxonomy id.
	FindByTaxID(ctx context.Context, taxID int64) (Species, error)

	// ListPopulated returns species with at least one gene, gene-count
	// descending.
	ListPopulated(ctx context.Context) ([]Species, error)

	// Save creates or updates a catalog entry (used by seeding).
	Save(ctx context.Context, s Species) (Species, error)
}

// SynonymStore defines lookups over gene synonyms.
type SynonymStore interface {
	// ListByGene returns a gene's synonyms in store order.
	ListByGene(ctx context.Context, geneID int64) ([]string, error)
}

// AnnotationStore defines lookups over GO term links.
type AnnotationStore interface {
	// ListByGene returns a gene's annotations ordered by category then term.
	ListByGene(ctx context.Context, geneID int64) ([]Annotation, error)
}

// TraitStore defines lookups over trait associations.
type TraitStore interface {
	// TopByGene returns up to limit associations, ascending p-value with
	// absent p-values last.
	TopByGene(ctx context.Context, geneID int64, limit int) ([]TraitAssociation, error)

	// CountByGene returns the true association count.
	CountByGene(ctx context.Context, geneID int64) (int64, error)
}

// ConstraintStore defines lookups over constraint metrics.
type ConstraintStore interface {
	// LatestByGene returns the gene's metrics from the newest source
	// version. Absence surfaces as a not-found error.
	LatestByGene(ctx context.Context, geneID int64) (ConstraintMetrics, error)
}

// ClinicalStore defines lookups over the clinical variant archive.
type ClinicalStore interface {
	// SummaryByGene returns the gene's bucketed allele counts. Absence
	// surfaces as a not-found error.
	SummaryByGene(ctx context.Context, geneID int64) (ClinicalSummary, error)

	// TopVariants returns up to limit variants in store order:
	// review-status weight, then significance text.
	TopVariants(ctx context.Context, geneID int64, limit int) ([]ClinicalVariant, error)
}

// SummaryStore defines lookups over functional summaries.
type SummaryStore interface {
	// ByGene returns the gene's functional summary. Absence surfaces as a
	// not-found error.
	ByGene(ctx context.Context, geneID int64) (FunctionalSummary, error)
}
