package gene

import (
	"sort"
	"strconv"
)

// ChromosomeCount is one chromosome inventory entry for a species.
type ChromosomeCount struct {
	label string
	count int64
}

// NewChromosomeCount creates a ChromosomeCount.
func NewChromosomeCount(label string, count int64) ChromosomeCount {
	return ChromosomeCount{label: label, count: count}
}

// Label returns the chromosome label.
func (c ChromosomeCount) Label() string { return c.label }

// Count returns the gene count on the chromosome.
func (c ChromosomeCount) Count() int64 { return c.count }

// ChromosomeRank orders chromosome labels for display: numeric labels by
// value, then X=23, Y=24, MT=25, anything else after.
func ChromosomeRank(label string) int {
	if n, err := strconv.Atoi(label); err == nil {
		return n
	}
	switch label {
	case "X":
		return 23
	case "Y":
		return 24
	case "MT":
		return 25
	default:
		return 26
	}
}

// SortChromosomes sorts inventory entries into display order. Ties among
// unranked labels break on the label itself so the order is deterministic.
func SortChromosomes(counts []ChromosomeCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		ri, rj := ChromosomeRank(counts[i].label), ChromosomeRank(counts[j].label)
		if ri != rj {
			return ri < rj
		}
		return counts[i].label < counts[j].label
	})
}
