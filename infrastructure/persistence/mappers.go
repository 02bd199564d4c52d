package persistence

import (
	"github.com/genomelab/genedex/domain/gene"
)

// GeneMapper maps between domain Gene and persistence GeneModel.
type GeneMapper struct{}

// ToDomain converts a GeneModel to a domain Gene. Synonyms live in their
// own table and are attached by callers that need them.
func (m GeneMapper) ToDomain(e GeneModel) gene.Gene {
	return gene.ReconstructGene(
		e.ID,
		e.TaxID,
		e.Symbol,
		e.Name,
		e.Chromosome,
		e.MapLocation,
		e.GeneType,
		e.Description,
	)
}

// ToModel converts a domain Gene to a GeneModel.
func (m GeneMapper) ToModel(g gene.Gene) GeneModel {
	return GeneModel{
		ID:          g.ID(),
		TaxID:       g.TaxID(),
		Symbol:      g.Symbol(),
		Name:        g.Name(),
		Chromosome:  g.Chromosome(),
		MapLocation: g.MapLocation(),
		GeneType:    g.GeneType(),
		Description: g.Description(),
	}
}

// SpeciesMapper maps between domain Species and persistence SpeciesModel.
type SpeciesMapper struct{}

// ToDomain converts a SpeciesModel to a domain Species.
func (m SpeciesMapper) ToDomain(e SpeciesModel) gene.Species {
	return gene.ReconstructSpecies(e.TaxID, e.ScientificName, e.CommonName, e.GeneCount)
}

// ToModel converts a domain Species to a SpeciesModel.
func (m SpeciesMapper) ToModel(s gene.Species) SpeciesModel {
	return SpeciesModel{
		TaxID:          s.TaxID(),
		ScientificName: s.ScientificName(),
		CommonName:     s.CommonName(),
		GeneCount:      s.GeneCount(),
	}
}

// SynonymMapper maps a SynonymModel to its bare synonym text.
type SynonymMapper struct{}

// ToDomain converts a SynonymModel to the synonym string.
func (m SynonymMapper) ToDomain(e SynonymModel) string {
	return e.Synonym
}

// ToModel converts a synonym string to a SynonymModel. The gene id is set
// by the caller.
func (m SynonymMapper) ToModel(synonym string) SynonymModel {
	return SynonymModel{Synonym: synonym}
}

// AnnotationMapper maps between domain Annotation and AnnotationModel.
type AnnotationMapper struct{}

// ToDomain converts an AnnotationModel to a domain Annotation. Rows with
// an unknown category come back with a zero category and are dropped by
// the Ontology grouping.
func (m AnnotationMapper) ToDomain(e AnnotationModel) gene.Annotation {
	category, err := gene.ParseGOCategory(e.Category)
	if err != nil {
		category = ""
	}
	return gene.NewAnnotation(e.GeneID, category, e.TermID, e.Term)
}

// ToModel converts a domain Annotation to an AnnotationModel.
func (m AnnotationMapper) ToModel(a gene.Annotation) AnnotationModel {
	return AnnotationModel{
		GeneID:   a.GeneID(),
		Category: string(a.Category()),
		TermID:   a.TermID(),
		Term:     a.Term(),
	}
}

// TraitMapper maps between domain TraitAssociation and TraitModel.
type TraitMapper struct{}

// ToDomain converts a TraitModel to a domain TraitAssociation.
func (m TraitMapper) ToDomain(e TraitModel) gene.TraitAssociation {
	return gene.ReconstructTraitAssociation(
		e.GeneID,
		e.Trait,
		e.SNPID,
		e.PValue,
		e.PValueText,
		e.RiskAllele,
		e.OddsRatio,
		e.PubmedID,
	)
}

// ToModel converts a domain TraitAssociation to a TraitModel.
func (m TraitMapper) ToModel(t gene.TraitAssociation) TraitModel {
	model := TraitModel{
		GeneID:     t.GeneID(),
		Trait:      t.Trait(),
		SNPID:      t.SNPID(),
		PValueText: t.PValueText(),
		RiskAllele: t.RiskAllele(),
		PubmedID:   t.PubmedID(),
	}
	if v, ok := t.PValue(); ok {
		model.PValue = &v
	}
	if v, ok := t.OddsRatio(); ok {
		model.OddsRatio = &v
	}
	return model
}

// ConstraintMapper maps between domain ConstraintMetrics and ConstraintModel.
type ConstraintMapper struct{}

// ToDomain converts a ConstraintModel to domain ConstraintMetrics.
func (m ConstraintMapper) ToDomain(e ConstraintModel) gene.ConstraintMetrics {
	return gene.ReconstructConstraintMetrics(
		e.GeneID,
		e.Transcript,
		e.PLI,
		e.LOEUF,
		e.OELof,
		e.OEMis,
		e.MisZ,
		e.Version,
	)
}

// ToModel converts domain ConstraintMetrics to a ConstraintModel.
func (m ConstraintMapper) ToModel(c gene.ConstraintMetrics) ConstraintModel {
	model := ConstraintModel{
		GeneID:     c.GeneID(),
		Transcript: c.Transcript(),
		Version:    c.Version(),
	}
	if v, ok := c.PLI(); ok {
		model.PLI = &v
	}
	if v, ok := c.LOEUF(); ok {
		model.LOEUF = &v
	}
	if v, ok := c.OELof(); ok {
		model.OELof = &v
	}
	if v, ok := c.OEMis(); ok {
		model.OEMis = &v
	}
	if v, ok := c.MisZ(); ok {
		model.MisZ = &v
	}
	return model
}

// ClinicalSummaryMapper maps between domain ClinicalSummary and
// ClinicalSummaryModel.
type ClinicalSummaryMapper struct{}

// ToDomain converts a ClinicalSummaryModel to a domain ClinicalSummary.
func (m ClinicalSummaryMapper) ToDomain(e ClinicalSummaryModel) gene.ClinicalSummary {
	return gene.ReconstructClinicalSummary(
		e.GeneID,
		e.TotalSubmissions,
		e.TotalAlleles,
		e.PathogenicAlleles,
		e.UncertainAlleles,
		e.ConflictingAlleles,
		e.MIMNumber,
	)
}

// ToModel converts a domain ClinicalSummary to a ClinicalSummaryModel.
func (m ClinicalSummaryMapper) ToModel(s gene.ClinicalSummary) ClinicalSummaryModel {
	return ClinicalSummaryModel{
		GeneID:             s.GeneID(),
		TotalSubmissions:   s.TotalSubmissions(),
		TotalAlleles:       s.TotalAlleles(),
		PathogenicAlleles:  s.PathogenicAlleles(),
		UncertainAlleles:   s.UncertainAlleles(),
		ConflictingAlleles: s.ConflictingAlleles(),
		MIMNumber:          s.MIMNumber(),
	}
}

// ClinicalVariantMapper maps between domain ClinicalVariant and
// ClinicalVariantModel.
type ClinicalVariantMapper struct{}

// ToDomain converts a ClinicalVariantModel to a domain ClinicalVariant.
func (m ClinicalVariantMapper) ToDomain(e ClinicalVariantModel) gene.ClinicalVariant {
	return gene.ReconstructClinicalVariant(
		e.AlleleID,
		e.GeneID,
		e.Name,
		e.VariantType,
		e.Significance,
		e.ReviewStatus,
		e.Phenotypes,
		e.Chromosome,
		e.Start,
		e.RsID,
	)
}

// ToModel converts a domain ClinicalVariant to a ClinicalVariantModel.
func (m ClinicalVariantMapper) ToModel(v gene.ClinicalVariant) ClinicalVariantModel {
	return ClinicalVariantModel{
		AlleleID:     v.AlleleID(),
		GeneID:       v.GeneID(),
		Name:         v.Name(),
		VariantType:  v.VariantType(),
		Significance: v.Significance(),
		ReviewStatus: v.ReviewStatus(),
		Phenotypes:   v.Phenotypes(),
		Chromosome:   v.Chromosome(),
		Start:        v.Start(),
		RsID:         v.RSID(),
	}
}

// GeneSummaryMapper maps between domain FunctionalSummary and
// GeneSummaryModel.
type GeneSummaryMapper struct{}

// ToDomain converts a GeneSummaryModel to a domain FunctionalSummary.
func (m GeneSummaryMapper) ToDomain(e GeneSummaryModel) gene.FunctionalSummary {
	return gene.NewFunctionalSummary(e.GeneID, e.Summary, e.Source)
}

// ToModel converts a domain FunctionalSummary to a GeneSummaryModel.
func (m GeneSummaryMapper) ToModel(s gene.FunctionalSummary) GeneSummaryModel {
	return GeneSummaryModel{
		GeneID:  s.GeneID(),
		Summary: s.Text(),
		Source:  s.Source(),
	}
}
