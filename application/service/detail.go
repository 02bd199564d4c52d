package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/genomelab/genedex/domain/gene"
	"github.com/genomelab/genedex/internal/database"
	"golang.org/x/sync/errgroup"
)

// Display caps for aggregated detail sections.
const (
	traitDisplayLimit   = 20
	variantDisplayLimit = 10
)

// Genes aggregates one gene's annotation sources into a detail record.
type Genes struct {
	genes       gene.GeneStore
	species     gene.SpeciesStore
	synonyms    gene.SynonymStore
	summaries   gene.SummaryStore
	annotations gene.AnnotationStore
	traits      gene.TraitStore
	constraints gene.ConstraintStore
	clinical    gene.ClinicalStore
	closed      *atomic.Bool
	logger      *slog.Logger
}

// NewGenes creates a new Genes service.
func NewGenes(
	genes gene.GeneStore,
	species gene.SpeciesStore,
	synonyms gene.SynonymStore,
	summaries gene.SummaryStore,
	annotations gene.AnnotationStore,
	traits gene.TraitStore,
	constraints gene.ConstraintStore,
	clinical gene.ClinicalStore,
	closed *atomic.Bool,
	logger *slog.Logger,
) *Genes {
	if logger == nil {
		logger = slog.Default()
	}
	return &Genes{
		genes:       genes,
		species:     species,
		synonyms:    synonyms,
		summaries:   summaries,
		annotations: annotations,
		traits:      traits,
		constraints: constraints,
		clinical:    clinical,
		closed:      closed,
		logger:      logger,
	}
}

// Detail returns the aggregated record for one gene. The primary gene
// lookup is authoritative: an absent gene is ErrNotFound and a store fault
// is ErrStoreUnavailable. Every annotation join runs concurrently and is
// tolerant of absence; a join that fails outright is omitted from the
// record and listed in Degraded.
func (s *Genes) Detail(ctx context.Context, geneID int64) (gene.Detail, error) {
	if s.closed != nil && s.closed.Load() {
		return gene.Detail{}, ErrClientClosed
	}
	if geneID <= 0 {
		return gene.Detail{}, fmt.Errorf("gene id %d: %w", geneID, ErrInvalidArgument)
	}

	g, err := s.genes.FindByID(ctx, geneID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return gene.Detail{}, fmt.Errorf("gene %d: %w", geneID, ErrNotFound)
		}
		return gene.Detail{}, errors.Join(ErrStoreUnavailable, err)
	}

	var (
		species       gene.Species
		speciesErr    error
		synonyms      []string
		synonymsErr   error
		summary       gene.FunctionalSummary
		summaryErr    error
		annotations   []gene.Annotation
		ontologyErr   error
		traitItems    []gene.TraitAssociation
		traitTotal    int64
		traitsErr     error
		constraint    gene.ConstraintMetrics
		constraintErr error
		clinSummary   gene.ClinicalSummary
		variants      []gene.ClinicalVariant
		clinicalErr   error
	)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		species, speciesErr = s.species.FindByTaxID(gctx, g.TaxID())
		return nil
	})
	group.Go(func() error {
		synonyms, synonymsErr = s.synonyms.ListByGene(gctx, geneID)
		return nil
	})
	group.Go(func() error {
		summary, summaryErr = s.summaries.ByGene(gctx, geneID)
		return nil
	})
	group.Go(func() error {
		annotations, ontologyErr = s.annotations.ListByGene(gctx, geneID)
		return nil
	})
	group.Go(func() error {
		traitItems, traitsErr = s.traits.TopByGene(gctx, geneID, traitDisplayLimit)
		if traitsErr == nil {
			traitTotal, traitsErr = s.traits.CountByGene(gctx, geneID)
		}
		return nil
	})
	group.Go(func() error {
		constraint, constraintErr = s.constraints.LatestByGene(gctx, geneID)
		return nil
	})
	group.Go(func() error {
		clinSummary, clinicalErr = s.clinical.SummaryByGene(gctx, geneID)
		if clinicalErr == nil {
			variants, clinicalErr = s.clinical.TopVariants(gctx, geneID, variantDisplayLimit)
		}
		return nil
	})

	// Branches record their own outcomes and never fail the group.
	_ = group.Wait()

	// fail reports whether a section must be omitted. Absence is a normal
	// outcome; anything else marks the record degraded.
	var degraded []string
	fail := func(section string, err error) bool {
		if err == nil {
			return false
		}
		if !errors.Is(err, database.ErrNotFound) {
			s.logger.Warn("gene detail aggregation degraded",
				"gene_id", geneID, "section", section, "error", errors.Join(ErrPartialAggregation, err))
			degraded = append(degraded, section)
		}
		return true
	}

	if fail("species", speciesErr) {
		species = gene.Species{}
	}
	if !fail("synonyms", synonymsErr) {
		g = g.WithSynonyms(synonyms)
	}

	detail := gene.NewDetail(g, species)
	if !fail("summary", summaryErr) {
		detail = detail.WithSummary(summary)
	}
	if !fail("ontology", ontologyErr) {
		detail = detail.WithOntology(gene.NewOntology(annotations))
	}
	if !fail("traits", traitsErr) {
		detail = detail.WithTraits(gene.NewTraitList(traitItems, traitTotal))
	}
	if !fail("constraint", constraintErr) {
		detail = detail.WithConstraint(constraint)
	}
	if !fail("clinical", clinicalErr) {
		detail = detail.WithClinical(gene.NewClinicalRecord(clinSummary, variants))
	}
	for _, section := range degraded {
		detail = detail.WithDegraded(section)
	}

	return detail, nil
}
