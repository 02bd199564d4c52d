package layout

import (
	"math"
	"sort"

	"github.com/genomelab/genedex/domain/gene"
)

// VisibleCap bounds the flat visible placement list.
const VisibleCap = 200

// intraBandSpread is the share of a band's span genes spread across, so a
// band's last gene never collides with the next band's first.
const intraBandSpread = 0.8

// maxPosition clamps final positions onto the [0,100) axis.
const maxPosition = 99.0

// Placement is one gene with its fractional axis position.
type Placement struct {
	gene        gene.Gene
	position    float64
	highlighted bool
}

// Gene returns the placed gene.
func (p Placement) Gene() gene.Gene { return p.gene }

// Position returns the fractional position in [0, 99].
func (p Placement) Position() float64 { return p.position }

// Highlighted reports membership in the caller's highlight set.
func (p Placement) Highlighted() bool { return p.highlighted }

// Band is one ordered band group with every gene placed in it.
type Band struct {
	label      string
	placements []Placement
}

// Label returns the band label.
func (b Band) Label() string { return b.label }

// Placements returns the band's placements in input gene order.
func (b Band) Placements() []Placement {
	result := make([]Placement, len(b.placements))
	copy(result, b.placements)
	return result
}

// Len returns the band's gene count.
func (b Band) Len() int { return len(b.placements) }

// Record is a computed chromosome layout.
type Record struct {
	bands   []Band
	visible []Placement
	total   int
	zoom    float64
}

// Bands returns the ordered band groups with all genes, unaffected by the
// visible cap.
func (r Record) Bands() []Band {
	result := make([]Band, len(r.bands))
	copy(result, r.bands)
	return result
}

// Visible returns the capped placement list, position ascending.
func (r Record) Visible() []Placement {
	result := make([]Placement, len(r.visible))
	copy(result, r.visible)
	return result
}

// Total returns the full gene count before sampling.
func (r Record) Total() int { return r.total }

// VisibleCount returns the sampled placement count.
func (r Record) VisibleCount() int { return len(r.visible) }

// Zoom returns the validated passthrough zoom factor.
func (r Record) Zoom() float64 { return r.zoom }

// Compute lays out a chromosome's genes. Genes are grouped by band,
// p-arm bands before q-arm, numeric band order within an arm, unknown
// last. Each band gets base position bandIndex/totalBands on [0,100);
// genes spread evenly across 80% of the band's span. When the gene count
// exceeds VisibleCap, every highlighted gene is kept and the rest are
// downsampled at a fixed stride for an even spread; if highlighted genes
// alone exceed the cap, the visible list truncates to the cap.
//
// Deterministic: identical inputs produce identical records. Zero genes
// produce an empty record. A non-positive or non-finite zoom defaults to 1.
func Compute(genes []gene.Gene, highlightedIDs []int64, zoom float64) Record {
	if zoom <= 0 || math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		zoom = 1.0
	}
	record := Record{total: len(genes), zoom: zoom}
	if len(genes) == 0 {
		return record
	}

	highlighted := make(map[int64]struct{}, len(highlightedIDs))
	for _, id := range highlightedIDs {
		highlighted[id] = struct{}{}
	}

	record.bands = placeBands(genes, highlighted)
	record.visible = sample(record.bands, len(genes))
	return record
}

// placeBands groups genes by band, orders the bands, and assigns positions.
func placeBands(genes []gene.Gene, highlighted map[int64]struct{}) []Band {
	groups := make(map[string][]gene.Gene)
	for _, g := range genes {
		label := normalizeBand(g.MapLocation())
		groups[label] = append(groups[label], g)
	}

	keys := make([]bandKey, 0, len(groups))
	for label := range groups {
		keys = append(keys, parseBand(label))
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	totalBands := len(keys)
	span := 100.0 / float64(totalBands)

	bands := make([]Band, 0, totalBands)
	for i, key := range keys {
		members := groups[key.label]
		base := float64(i) / float64(totalBands) * 100.0

		placements := make([]Placement, 0, len(members))
		for j, g := range members {
			pos := base + span*intraBandSpread*float64(j)/float64(len(members))
			if pos > maxPosition {
				pos = maxPosition
			}
			_, hl := highlighted[g.ID()]
			placements = append(placements, Placement{gene: g, position: pos, highlighted: hl})
		}
		bands = append(bands, Band{label: key.label, placements: placements})
	}
	return bands
}

// sample builds the visible list. Placements are walked in band order, so
// the result is position-ascending without a re-sort.
func sample(bands []Band, total int) []Placement {
	flat := make([]Placement, 0, total)
	for _, b := range bands {
		flat = append(flat, b.placements...)
	}
	if len(flat) <= VisibleCap {
		return flat
	}

	var keep []Placement
	otherCount := 0
	for _, p := range flat {
		if p.highlighted {
			keep = append(keep, p)
		} else {
			otherCount++
		}
	}
	if len(keep) >= VisibleCap {
		return keep[:VisibleCap]
	}

	budget := VisibleCap - len(keep)
	stride := (otherCount + budget - 1) / budget

	visible := make([]Placement, 0, VisibleCap)
	oi := 0
	for _, p := range flat {
		if p.highlighted {
			visible = append(visible, p)
			continue
		}
		if oi%stride == 0 {
			visible = append(visible, p)
		}
		oi++
	}
	return visible
}
