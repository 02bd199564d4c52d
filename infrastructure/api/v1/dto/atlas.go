package dto

import (
	"github.com/genomelab/genedex/infrastructure/api/jsonapi"
)

// PlacementSchema represents a placed gene inside a band.
type PlacementSchema struct {
	GeneID      int64   `json:"gene_id"`
	Symbol      string  `json:"symbol"`
	Position    float64 `json:"position"`
	Highlighted bool    `json:"highlighted"`
}

// BandSchema represents one cytogenetic band of a chromosome layout.
type BandSchema struct {
	Label      string            `json:"label"`
	Placements []PlacementSchema `json:"placements"`
}

// LayoutAttributes represents a computed chromosome layout in JSON:API format.
type LayoutAttributes struct {
	Chromosome   string       `json:"chromosome"`
	Zoom         float64      `json:"zoom"`
	TotalGenes   int          `json:"total_genes"`
	VisibleCount int          `json:"visible_count"`
	Bands        []BandSchema `json:"bands"`
}

// ChromosomeViewData represents chromosome view data in JSON:API format.
type ChromosomeViewData struct {
	Type       string           `json:"type"`
	ID         string           `json:"id"`
	Attributes LayoutAttributes `json:"attributes"`
}

// ChromosomeViewResponse carries the layout plus a parallel flat gene list
// that is independent of the visual cap.
type ChromosomeViewResponse struct {
	Data  ChromosomeViewData  `json:"data"`
	Genes []*jsonapi.Resource `json:"genes"`
	Meta  *jsonapi.Meta       `json:"meta,omitempty"`
}

// RegionResponse represents the band-region gene list response.
type RegionResponse struct {
	Data []*jsonapi.Resource `json:"data"`
	Meta *jsonapi.Meta       `json:"meta,omitempty"`
}
