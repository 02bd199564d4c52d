package search

import (
	"fmt"
	"strings"
)

// ConstraintTier selects genes by their constraint-metric profile.
type ConstraintTier string

// ConstraintTier values.
const (
	TierEssential   ConstraintTier = "essential"
	TierConstrained ConstraintTier = "constrained"
	TierTolerant    ConstraintTier = "tolerant"
)

// ParseConstraintTier normalizes a tier name.
func ParseConstraintTier(s string) (ConstraintTier, error) {
	switch ConstraintTier(strings.ToLower(strings.TrimSpace(s))) {
	case TierEssential:
		return TierEssential, nil
	case TierConstrained:
		return TierConstrained, nil
	case TierTolerant:
		return TierTolerant, nil
	default:
		return "", fmt.Errorf("unknown constraint tier %q", s)
	}
}

// ClinicalBucket selects genes by clinical evidence.
type ClinicalBucket string

// ClinicalBucket values.
const (
	BucketPathogenic ClinicalBucket = "pathogenic"
	BucketGWAS       ClinicalBucket = "gwas"
	BucketDisease    ClinicalBucket = "disease"
)

// ParseClinicalBucket normalizes a bucket name.
func ParseClinicalBucket(s string) (ClinicalBucket, error) {
	switch ClinicalBucket(strings.ToLower(strings.TrimSpace(s))) {
	case BucketPathogenic:
		return BucketPathogenic, nil
	case BucketGWAS:
		return BucketGWAS, nil
	case BucketDisease:
		return BucketDisease, nil
	default:
		return "", fmt.Errorf("unknown clinical bucket %q", s)
	}
}

// GeneTypeClass selects genes by gene type tag.
type GeneTypeClass string

// GeneTypeClass values.
const (
	TypeProteinCoding GeneTypeClass = "protein-coding"
	TypePseudo        GeneTypeClass = "pseudo"
	TypeNonCodingRNA  GeneTypeClass = "ncRNA"
	TypeOther         GeneTypeClass = "other"
)

// ParseGeneTypeClass normalizes a gene type class name.
func ParseGeneTypeClass(s string) (GeneTypeClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "protein-coding", "protein_coding":
		return TypeProteinCoding, nil
	case "pseudo":
		return TypePseudo, nil
	case "ncrna":
		return TypeNonCodingRNA, nil
	case "other":
		return TypeOther, nil
	default:
		return "", fmt.Errorf("unknown gene type class %q", s)
	}
}

// GOFilter selects genes by GO annotation coverage.
type GOFilter string

// GOFilter values. The empty value means no GO filtering.
const (
	GOFunction  GOFilter = "function"
	GOProcess   GOFilter = "process"
	GOComponent GOFilter = "component"
	GOAny       GOFilter = "any"
)

// ParseGOFilter normalizes a GO filter name.
func ParseGOFilter(s string) (GOFilter, error) {
	switch GOFilter(strings.ToLower(strings.TrimSpace(s))) {
	case GOFunction:
		return GOFunction, nil
	case GOProcess:
		return GOProcess, nil
	case GOComponent:
		return GOComponent, nil
	case GOAny:
		return GOAny, nil
	default:
		return "", fmt.Errorf("unknown GO filter %q", s)
	}
}

// Filters narrows a search. All fields are optional and AND-combined.
type Filters struct {
	taxID      int64
	chromosome string
	tier       ConstraintTier
	bucket     ClinicalBucket
	geneType   GeneTypeClass
	goFilter   GOFilter
}

// FiltersOption is a functional option for Filters.
type FiltersOption func(*Filters)

// WithSpecies filters to one species by taxonomy id.
func WithSpecies(taxID int64) FiltersOption {
	return func(f *Filters) {
		f.taxID = taxID
	}
}

// WithChromosome filters to one chromosome label (exact match).
func WithChromosome(chromosome string) FiltersOption {
	return func(f *Filters) {
		f.chromosome = chromosome
	}
}

// WithConstraintTier filters by constraint tier.
func WithConstraintTier(tier ConstraintTier) FiltersOption {
	return func(f *Filters) {
		f.tier = tier
	}
}

// WithClinicalBucket filters by clinical evidence bucket.
func WithClinicalBucket(bucket ClinicalBucket) FiltersOption {
	return func(f *Filters) {
		f.bucket = bucket
	}
}

// WithGeneType filters by gene type class.
func WithGeneType(class GeneTypeClass) FiltersOption {
	return func(f *Filters) {
		f.geneType = class
	}
}

// WithGOFilter filters by GO annotation coverage.
func WithGOFilter(filter GOFilter) FiltersOption {
	return func(f *Filters) {
		f.goFilter = filter
	}
}

// NewFilters creates a Filters with options.
func NewFilters(opts ...FiltersOption) Filters {
	f := Filters{}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// TaxID returns the species filter (0 = unfiltered).
func (f Filters) TaxID() int64 { return f.taxID }

// Chromosome returns the chromosome filter ("" = unfiltered).
func (f Filters) Chromosome() string { return f.chromosome }

// ConstraintTier returns the constraint tier filter ("" = unfiltered).
func (f Filters) ConstraintTier() ConstraintTier { return f.tier }

// ClinicalBucket returns the clinical bucket filter ("" = unfiltered).
func (f Filters) ClinicalBucket() ClinicalBucket { return f.bucket }

// GeneType returns the gene type filter ("" = unfiltered).
func (f Filters) GeneType() GeneTypeClass { return f.geneType }

// GOFilter returns the GO coverage filter ("" = unfiltered).
func (f Filters) GOFilter() GOFilter { return f.goFilter }

// IsEmpty returns true if no filters are set.
func (f Filters) IsEmpty() bool {
	return f.taxID == 0 &&
		f.chromosome == "" &&
		f.tier == "" &&
		f.bucket == "" &&
		f.geneType == "" &&
		f.goFilter == ""
}
