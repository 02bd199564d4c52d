// Package dto provides request and response shapes for the v1 API.
package dto

// SummarySection represents the functional summary of a gene detail.
type SummarySection struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

// GOTermSchema represents one Gene Ontology annotation.
type GOTermSchema struct {
	TermID string `json:"term_id"`
	Term   string `json:"term"`
}

// OntologySection groups GO annotations by category.
type OntologySection struct {
	Function  []GOTermSchema `json:"function,omitempty"`
	Process   []GOTermSchema `json:"process,omitempty"`
	Component []GOTermSchema `json:"component,omitempty"`
}

// TraitSchema represents one GWAS trait association.
type TraitSchema struct {
	Trait      string   `json:"trait"`
	SNPID      string   `json:"snp_id,omitempty"`
	PValue     *float64 `json:"p_value,omitempty"`
	PValueText string   `json:"p_value_text,omitempty"`
	RiskAllele string   `json:"risk_allele,omitempty"`
	OddsRatio  *float64 `json:"odds_ratio,omitempty"`
	PubmedID   string   `json:"pubmed_id,omitempty"`
}

// TraitsSection carries the trait preview plus the true association count.
type TraitsSection struct {
	Total int64         `json:"total"`
	Items []TraitSchema `json:"items"`
}

// ConstraintSection represents gnomAD constraint metrics.
type ConstraintSection struct {
	PLI        *float64 `json:"pli,omitempty"`
	LOEUF      *float64 `json:"loeuf,omitempty"`
	OELof      *float64 `json:"oe_lof,omitempty"`
	OEMis      *float64 `json:"oe_mis,omitempty"`
	MisZ       *float64 `json:"mis_z,omitempty"`
	Transcript string   `json:"transcript,omitempty"`
	Version    string   `json:"version,omitempty"`
}

// VariantSchema represents one clinical variant.
type VariantSchema struct {
	AlleleID     int64  `json:"allele_id"`
	Name         string `json:"name,omitempty"`
	VariantType  string `json:"variant_type,omitempty"`
	Significance string `json:"significance,omitempty"`
	ReviewStatus string `json:"review_status,omitempty"`
	Phenotypes   string `json:"phenotypes,omitempty"`
	Chromosome   string `json:"chromosome,omitempty"`
	Start        int64  `json:"start,omitempty"`
	RSID         string `json:"rsid,omitempty"`
}

// ClinicalSection aggregates ClinVar counts and top variants.
type ClinicalSection struct {
	TotalSubmissions   int64           `json:"total_submissions"`
	TotalAlleles       int64           `json:"total_alleles"`
	PathogenicAlleles  int64           `json:"pathogenic_alleles"`
	UncertainAlleles   int64           `json:"uncertain_alleles"`
	ConflictingAlleles int64           `json:"conflicting_alleles"`
	MIMNumber          string          `json:"mim_number,omitempty"`
	Variants           []VariantSchema `json:"variants,omitempty"`
}

// GeneDetailAttributes represents gene detail attributes in JSON:API format.
// Optional sections are nil when their source carries no data for the gene.
type GeneDetailAttributes struct {
	Symbol      string             `json:"symbol"`
	Name        string             `json:"name,omitempty"`
	TaxID       int64              `json:"tax_id"`
	Species     string             `json:"species"`
	Chromosome  string             `json:"chromosome,omitempty"`
	MapLocation string             `json:"map_location,omitempty"`
	GeneType    string             `json:"gene_type,omitempty"`
	Description string             `json:"description,omitempty"`
	Synonyms    []string           `json:"synonyms,omitempty"`
	Summary     *SummarySection    `json:"summary,omitempty"`
	GO          *OntologySection   `json:"go,omitempty"`
	Traits      *TraitsSection     `json:"traits,omitempty"`
	Constraint  *ConstraintSection `json:"constraint,omitempty"`
	Clinical    *ClinicalSection   `json:"clinical,omitempty"`
	Degraded    []string           `json:"degraded,omitempty"`
}

// GeneDetailData represents gene detail data in JSON:API format.
type GeneDetailData struct {
	Type       string               `json:"type"`
	ID         string               `json:"id"`
	Attributes GeneDetailAttributes `json:"attributes"`
}

// GeneDetailResponse represents the gene detail API response.
type GeneDetailResponse struct {
	Data GeneDetailData `json:"data"`
}
