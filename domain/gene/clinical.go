package gene

// ClinicalSummary holds per-gene bucketed allele counts from the clinical
// variant archive.
type ClinicalSummary struct {
	geneID             int64
	totalSubmissions   int64
	totalAlleles       int64
	pathogenicAlleles  int64
	uncertainAlleles   int64
	conflictingAlleles int64
	mimNumber          string
}

// ReconstructClinicalSummary creates a ClinicalSummary from persisted state.
func ReconstructClinicalSummary(
	geneID int64,
	totalSubmissions int64,
	totalAlleles int64,
	pathogenicAlleles int64,
	uncertainAlleles int64,
	conflictingAlleles int64,
	mimNumber string,
) ClinicalSummary {
	return ClinicalSummary{
		geneID:             geneID,
		totalSubmissions:   totalSubmissions,
		totalAlleles:       totalAlleles,
		pathogenicAlleles:  pathogenicAlleles,
		uncertainAlleles:   uncertainAlleles,
		conflictingAlleles: conflictingAlleles,
		mimNumber:          mimNumber,
	}
}

// GeneID returns the gene id.
func (s ClinicalSummary) GeneID() int64 { return s.geneID }

// TotalSubmissions returns the total submission count.
func (s ClinicalSummary) TotalSubmissions() int64 { return s.totalSubmissions }

// TotalAlleles returns the total distinct allele count.
func (s ClinicalSummary) TotalAlleles() int64 { return s.totalAlleles }

// PathogenicAlleles returns the pathogenic/likely-pathogenic allele count.
func (s ClinicalSummary) PathogenicAlleles() int64 { return s.pathogenicAlleles }

// UncertainAlleles returns the uncertain-significance allele count.
func (s ClinicalSummary) UncertainAlleles() int64 { return s.uncertainAlleles }

// ConflictingAlleles returns the conflicting-interpretation allele count.
func (s ClinicalSummary) ConflictingAlleles() int64 { return s.conflictingAlleles }

// MIMNumber returns the gene's MIM number, empty when absent.
func (s ClinicalSummary) MIMNumber() string { return s.mimNumber }

// ClinicalVariant is one archived variant record for a gene.
type ClinicalVariant struct {
	alleleID     int64
	geneID       int64
	name         string
	variantType  string
	significance string
	reviewStatus string
	phenotypes   string
	chromosome   string
	start        int64
	rsID         string
}

// ReconstructClinicalVariant creates a ClinicalVariant from persisted state.
func ReconstructClinicalVariant(
	alleleID int64,
	geneID int64,
	name string,
	variantType string,
	significance string,
	reviewStatus string,
	phenotypes string,
	chromosome string,
	start int64,
	rsID string,
) ClinicalVariant {
	return ClinicalVariant{
		alleleID:     alleleID,
		geneID:       geneID,
		name:         name,
		variantType:  variantType,
		significance: significance,
		reviewStatus: reviewStatus,
		phenotypes:   phenotypes,
		chromosome:   chromosome,
		start:        start,
		rsID:         rsID,
	}
}

// AlleleID returns the archive allele id.
func (v ClinicalVariant) AlleleID() int64 { return v.alleleID }

// GeneID returns the gene id.
func (v ClinicalVariant) GeneID() int64 { return v.geneID }

// Name returns the variant name (HGVS expression).
func (v ClinicalVariant) Name() string { return v.name }

// VariantType returns the variant type ("single nucleotide variant").
func (v ClinicalVariant) VariantType() string { return v.variantType }

// Significance returns the clinical significance text.
func (v ClinicalVariant) Significance() string { return v.significance }

// ReviewStatus returns the review status text.
func (v ClinicalVariant) ReviewStatus() string { return v.reviewStatus }

// Phenotypes returns the semicolon-joined phenotype list.
func (v ClinicalVariant) Phenotypes() string { return v.phenotypes }

// Chromosome returns the chromosome label.
func (v ClinicalVariant) Chromosome() string { return v.chromosome }

// Start returns the variant start position.
func (v ClinicalVariant) Start() int64 { return v.start }

// RSID returns the dbSNP id, empty when absent.
func (v ClinicalVariant) RSID() string { return v.rsID }

// ClinicalRecord pairs a gene's clinical summary with a bounded variant
// selection in store order.
type ClinicalRecord struct {
	summary  ClinicalSummary
	variants []ClinicalVariant
}

// NewClinicalRecord creates a ClinicalRecord.
func NewClinicalRecord(summary ClinicalSummary, variants []ClinicalVariant) ClinicalRecord {
	copied := make([]ClinicalVariant, len(variants))
	copy(copied, variants)
	return ClinicalRecord{summary: summary, variants: copied}
}

// Summary returns the bucketed allele counts.
func (r ClinicalRecord) Summary() ClinicalSummary { return r.summary }

// Variants returns the bounded variant selection.
func (r ClinicalRecord) Variants() []ClinicalVariant {
	result := make([]ClinicalVariant, len(r.variants))
	copy(result, r.variants)
	return result
}
