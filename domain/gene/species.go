package gene

import "fmt"

// Species is a catalog entry for one supported organism.
type Species struct {
	taxID          int64
	scientificName string
	commonName     string
	geneCount      int64
}

// NewSpecies creates a Species, validating the taxonomy id.
func NewSpecies(taxID int64, scientificName, commonName string) (Species, error) {
	if taxID <= 0 {
		return Species{}, fmt.Errorf("taxonomy id must be positive, got %d", taxID)
	}
	return Species{
		taxID:          taxID,
		scientificName: scientificName,
		commonName:     commonName,
	}, nil
}

// ReconstructSpecies creates a Species from persisted state.
func ReconstructSpecies(taxID int64, scientificName, commonName string, geneCount int64) Species {
	return Species{
		taxID:          taxID,
		scientificName: scientificName,
		commonName:     commonName,
		geneCount:      geneCount,
	}
}

// TaxID returns the NCBI taxonomy id.
func (s Species) TaxID() int64 { return s.taxID }

// ScientificName returns the binomial name ("Homo sapiens").
func (s Species) ScientificName() string { return s.scientificName }

// CommonName returns the common name ("Human").
func (s Species) CommonName() string { return s.commonName }

// GeneCount returns the denormalized total gene count.
func (s Species) GeneCount() int64 { return s.geneCount }

// DisplayName returns the common name, falling back to the scientific name.
func (s Species) DisplayName() string {
	if s.commonName != "" {
		return s.commonName
	}
	return s.scientificName
}

// WithGeneCount returns a copy with the gene count set.
func (s Species) WithGeneCount(count int64) Species {
	s.geneCount = count
	return s
}
