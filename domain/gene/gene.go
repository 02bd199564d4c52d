// Package gene provides the core annotation domain: gene records, species,
// ontology terms, trait associations, constraint metrics, clinical records,
// and the store interfaces the annotation database implements.
package gene

import (
	"errors"
	"fmt"
)

// Gene is an immutable gene record keyed by its stable numeric id.
type Gene struct {
	id          int64
	taxID       int64
	symbol      string
	name        string
	chromosome  string
	mapLocation string
	geneType    string
	description string
	synonyms    []string
}

// NewGene creates a Gene, validating the identifying fields.
func NewGene(id, taxID int64, symbol string) (Gene, error) {
	if id <= 0 {
		return Gene{}, fmt.Errorf("gene id must be positive, got %d", id)
	}
	if taxID <= 0 {
		return Gene{}, fmt.Errorf("taxonomy id must be positive, got %d", taxID)
	}
	if symbol == "" {
		return Gene{}, errors.New("gene symbol is required")
	}
	return Gene{id: id, taxID: taxID, symbol: symbol}, nil
}

// ReconstructGene creates a Gene from persisted state.
func ReconstructGene(
	id int64,
	taxID int64,
	symbol string,
	name string,
	chromosome string,
	mapLocation string,
	geneType string,
	description string,
) Gene {
	return Gene{
		id:          id,
		taxID:       taxID,
		symbol:      symbol,
		name:        name,
		chromosome:  chromosome,
		mapLocation: mapLocation,
		geneType:    geneType,
		description: description,
	}
}

// ID returns the stable numeric gene id.
func (g Gene) ID() int64 { return g.id }

// TaxID returns the taxonomy id of the gene's species.
func (g Gene) TaxID() int64 { return g.taxID }

// Symbol returns the official gene symbol.
func (g Gene) Symbol() string { return g.symbol }

// Name returns the full gene name.
func (g Gene) Name() string { return g.name }

// Chromosome returns the chromosome label ("1".."22", "X", "Y", "MT").
func (g Gene) Chromosome() string { return g.chromosome }

// MapLocation returns the cytogenetic map location (e.g. "11p15.5").
func (g Gene) MapLocation() string { return g.mapLocation }

// GeneType returns the gene type tag (e.g. "protein-coding").
func (g Gene) GeneType() string { return g.geneType }

// Description returns the free-text description.
func (g Gene) Description() string { return g.description }

// Synonyms returns the attached synonym list. Empty unless a store load
// attached synonyms via WithSynonyms.
func (g Gene) Synonyms() []string {
	if g.synonyms == nil {
		return nil
	}
	result := make([]string, len(g.synonyms))
	copy(result, g.synonyms)
	return result
}

// WithSynonyms returns a copy with the synonym list attached.
func (g Gene) WithSynonyms(synonyms []string) Gene {
	if synonyms != nil {
		g.synonyms = make([]string, len(synonyms))
		copy(g.synonyms, synonyms)
	} else {
		g.synonyms = nil
	}
	return g
}
