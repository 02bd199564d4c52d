package dto

import (
	"github.com/genomelab/genedex/infrastructure/api/jsonapi"
)

// SearchItemAttributes represents one search result in JSON:API format.
type SearchItemAttributes struct {
	Symbol            string   `json:"symbol"`
	Name              string   `json:"name,omitempty"`
	Species           string   `json:"species"`
	TaxID             int64    `json:"tax_id"`
	Chromosome        string   `json:"chromosome,omitempty"`
	MapLocation       string   `json:"map_location,omitempty"`
	GeneType          string   `json:"gene_type,omitempty"`
	Matched           string   `json:"matched"`
	Source            string   `json:"source"`
	Score             float64  `json:"score"`
	TraitCount        int64    `json:"trait_count"`
	HasSummary        bool     `json:"has_summary"`
	HasGWAS           bool     `json:"has_gwas"`
	MaxPLI            *float64 `json:"max_pli,omitempty"`
	MinLOEUF          *float64 `json:"min_loeuf,omitempty"`
	PathogenicAlleles int64    `json:"pathogenic_alleles"`
}

// SearchItemData represents search result data in JSON:API format.
type SearchItemData struct {
	Type       string               `json:"type"`
	ID         string               `json:"id"`
	Attributes SearchItemAttributes `json:"attributes"`
}

// SearchResponse represents a search API response in JSON:API format.
type SearchResponse struct {
	Data  []SearchItemData `json:"data"`
	Meta  *jsonapi.Meta    `json:"meta,omitempty"`
	Links *jsonapi.Links   `json:"links,omitempty"`
}
