package search

import (
	"sort"

	"github.com/genomelab/genedex/domain/gene"
)

// MatchSource names the field family that produced a hit. When the term
// matches several sources, the label comes from the highest-precedence one.
type MatchSource string

// MatchSource values, in precedence order.
const (
	SourceGene    MatchSource = "gene"
	SourceSynonym MatchSource = "synonym"
	SourceGOTerm  MatchSource = "go_term"
	SourceTrait   MatchSource = "trait"
)

// Rank returns the precedence rank (lower wins).
func (s MatchSource) Rank() int {
	switch s {
	case SourceGene:
		return 0
	case SourceSynonym:
		return 1
	case SourceGOTerm:
		return 2
	case SourceTrait:
		return 3
	default:
		return 4
	}
}

// Hit is one ranked text-index match.
type Hit struct {
	geneID  int64
	score   float64
	matched string
	source  MatchSource
}

// NewHit creates a Hit.
func NewHit(geneID int64, score float64, matched string, source MatchSource) Hit {
	return Hit{geneID: geneID, score: score, matched: matched, source: source}
}

// GeneID returns the matched gene id.
func (h Hit) GeneID() int64 { return h.geneID }

// Score returns the relevance score (higher is better).
func (h Hit) Score() float64 { return h.score }

// Matched returns the matched-text snippet.
func (h Hit) Matched() string { return h.matched }

// Source returns the field family that produced the hit.
func (h Hit) Source() MatchSource { return h.source }

// SortHits orders hits by score descending, ties by ascending gene id.
func SortHits(hits []Hit) {
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].geneID < hits[j].geneID
	})
}

// Dedupe keeps the first hit per gene id, preserving order. Input is
// assumed already rank-ordered, so the survivor is the best-ranked match.
func Dedupe(hits []Hit) []Hit {
	seen := make(map[int64]struct{}, len(hits))
	result := make([]Hit, 0, len(hits))
	for _, h := range hits {
		if _, ok := seen[h.geneID]; ok {
			continue
		}
		seen[h.geneID] = struct{}{}
		result = append(result, h)
	}
	return result
}

// DisplayRow carries the denormalized display fields and badge scalars the
// store joins for one gene.
type DisplayRow struct {
	gene              gene.Gene
	speciesName       string
	traitCount        int64
	hasSummary        bool
	maxPLI            *float64
	minLOEUF          *float64
	pathogenicAlleles int64
}

// NewDisplayRow creates a DisplayRow.
func NewDisplayRow(
	g gene.Gene,
	speciesName string,
	traitCount int64,
	hasSummary bool,
	maxPLI *float64,
	minLOEUF *float64,
	pathogenicAlleles int64,
) DisplayRow {
	return DisplayRow{
		gene:              g,
		speciesName:       speciesName,
		traitCount:        traitCount,
		hasSummary:        hasSummary,
		maxPLI:            copyFloat(maxPLI),
		minLOEUF:          copyFloat(minLOEUF),
		pathogenicAlleles: pathogenicAlleles,
	}
}

// Gene returns the core gene record.
func (r DisplayRow) Gene() gene.Gene { return r.gene }

// SpeciesName returns the species display name.
func (r DisplayRow) SpeciesName() string { return r.speciesName }

// Item is one search result: a hit decorated with display fields.
type Item struct {
	row     DisplayRow
	score   float64
	matched string
	source  MatchSource
}

// NewItem decorates a hit with its display row.
func NewItem(row DisplayRow, hit Hit) Item {
	return Item{
		row:     row,
		score:   hit.Score(),
		matched: hit.Matched(),
		source:  hit.Source(),
	}
}

// Gene returns the core gene record.
func (i Item) Gene() gene.Gene { return i.row.gene }

// SpeciesName returns the species display name.
func (i Item) SpeciesName() string { return i.row.speciesName }

// Score returns the relevance score.
func (i Item) Score() float64 { return i.score }

// Matched returns the matched-text snippet.
func (i Item) Matched() string { return i.matched }

// Source returns the field family that produced the hit.
func (i Item) Source() MatchSource { return i.source }

// TraitCount returns the gene's trait association count.
func (i Item) TraitCount() int64 { return i.row.traitCount }

// HasSummary returns true when the gene has a functional summary.
func (i Item) HasSummary() bool { return i.row.hasSummary }

// HasGWAS returns true when the gene has at least one trait association.
func (i Item) HasGWAS() bool { return i.row.traitCount > 0 }

// MaxPLI returns the gene's highest pLI across constraint versions, if any.
func (i Item) MaxPLI() (float64, bool) {
	if i.row.maxPLI == nil {
		return 0, false
	}
	return *i.row.maxPLI, true
}

// MinLOEUF returns the gene's lowest LOEUF across constraint versions, if any.
func (i Item) MinLOEUF() (float64, bool) {
	if i.row.minLOEUF == nil {
		return 0, false
	}
	return *i.row.minLOEUF, true
}

// PathogenicAlleles returns the gene's pathogenic allele count.
func (i Item) PathogenicAlleles() int64 { return i.row.pathogenicAlleles }

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
