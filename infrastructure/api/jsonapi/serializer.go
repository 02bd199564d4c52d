package jsonapi

import (
	"strconv"

	"github.com/genomelab/genedex/domain/gene"
)

// SpeciesAttributes represents species attributes in JSON:API format.
type SpeciesAttributes struct {
	ScientificName string `json:"scientific_name"`
	CommonName     string `json:"common_name,omitempty"`
	DisplayName    string `json:"display_name"`
	GeneCount      int64  `json:"gene_count"`
}

// ChromosomeAttributes represents chromosome inventory attributes in JSON:API format.
type ChromosomeAttributes struct {
	Label     string `json:"label"`
	GeneCount int64  `json:"gene_count"`
}

// GeneAttributes represents a gene row in list responses.
type GeneAttributes struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name,omitempty"`
	TaxID       int64  `json:"tax_id"`
	Chromosome  string `json:"chromosome,omitempty"`
	MapLocation string `json:"map_location,omitempty"`
	GeneType    string `json:"gene_type,omitempty"`
}

// Serializer converts domain objects to JSON:API resources.
type Serializer struct{}

// NewSerializer creates a new Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// SpeciesResource converts a species to a JSON:API resource.
func (s *Serializer) SpeciesResource(sp gene.Species) *Resource {
	attrs := &SpeciesAttributes{
		ScientificName: sp.ScientificName(),
		CommonName:     sp.CommonName(),
		DisplayName:    sp.DisplayName(),
		GeneCount:      sp.GeneCount(),
	}
	return NewResource("species", strconv.FormatInt(sp.TaxID(), 10), attrs)
}

// SpeciesResources converts multiple species to JSON:API resources.
func (s *Serializer) SpeciesResources(species []gene.Species) []*Resource {
	resources := make([]*Resource, len(species))
	for i, sp := range species {
		resources[i] = s.SpeciesResource(sp)
	}
	return resources
}

// ChromosomeResource converts a chromosome count to a JSON:API resource.
func (s *Serializer) ChromosomeResource(c gene.ChromosomeCount) *Resource {
	attrs := &ChromosomeAttributes{
		Label:     c.Label(),
		GeneCount: c.Count(),
	}
	return NewResource("chromosome", c.Label(), attrs)
}

// ChromosomeResources converts multiple chromosome counts to JSON:API resources.
func (s *Serializer) ChromosomeResources(counts []gene.ChromosomeCount) []*Resource {
	resources := make([]*Resource, len(counts))
	for i, c := range counts {
		resources[i] = s.ChromosomeResource(c)
	}
	return resources
}

// GeneResource converts a gene to a JSON:API resource.
func (s *Serializer) GeneResource(g gene.Gene) *Resource {
	attrs := &GeneAttributes{
		Symbol:      g.Symbol(),
		Name:        g.Name(),
		TaxID:       g.TaxID(),
		Chromosome:  g.Chromosome(),
		MapLocation: g.MapLocation(),
		GeneType:    g.GeneType(),
	}
	return NewResource("gene", strconv.FormatInt(g.ID(), 10), attrs)
}

// GeneResources converts multiple genes to JSON:API resources.
func (s *Serializer) GeneResources(genes []gene.Gene) []*Resource {
	resources := make([]*Resource, len(genes))
	for i, g := range genes {
		resources[i] = s.GeneResource(g)
	}
	return resources
}
