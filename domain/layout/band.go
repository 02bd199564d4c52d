// Package layout computes deterministic 1-D chromosome ideogram layouts:
// genes grouped by cytogenetic band, placed on a [0,100) axis, and
// downsampled under a visible-marker cap that always preserves highlighted
// genes.
package layout

import "strings"

// UnknownBand is the bucket for genes with a missing or blank map location.
const UnknownBand = "unknown"

// Arm weights order band groups: p-arm, q-arm, non-arm labels, unknown.
const (
	armP = iota
	armQ
	armNone
	armUnknown
)

// bandKey is the sort key parsed from a band label.
type bandKey struct {
	arm   int
	major int
	minor int
	label string
}

// parseBand derives the sort key for a band label. The arm is the first
// "p" or "q" in the label; the band number is the digits (with optional
// dotted minor part) that follow it. Labels without an arm sort after
// arm bands; the unknown bucket sorts last.
func parseBand(label string) bandKey {
	if label == UnknownBand {
		return bandKey{arm: armUnknown, label: label}
	}
	idx := strings.IndexAny(label, "pq")
	if idx < 0 {
		return bandKey{arm: armNone, label: label}
	}
	key := bandKey{arm: armP, label: label}
	if label[idx] == 'q' {
		key.arm = armQ
	}
	key.major, key.minor = parseBandNumber(label[idx+1:])
	return key
}

// parseBandNumber reads a leading "major" integer and an optional ".minor"
// integer, stopping at the first character that belongs to neither ("11.21"
// → 11, 21; "36.3-p36.2" → 36, 3; "" → 0, 0).
func parseBandNumber(s string) (major, minor int) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		major = major*10 + int(s[i]-'0')
		i++
	}
	if i >= len(s) || s[i] != '.' {
		return major, 0
	}
	i++
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		minor = minor*10 + int(s[i]-'0')
		i++
	}
	return major, minor
}

// less orders band keys: arm weight, then major/minor band number within
// the arm, then the label itself for determinism.
func (k bandKey) less(other bandKey) bool {
	if k.arm != other.arm {
		return k.arm < other.arm
	}
	if k.major != other.major {
		return k.major < other.major
	}
	if k.minor != other.minor {
		return k.minor < other.minor
	}
	return k.label < other.label
}

// normalizeBand maps a raw map location to its band grouping key.
func normalizeBand(mapLocation string) string {
	label := strings.TrimSpace(mapLocation)
	if label == "" {
		return UnknownBand
	}
	return label
}
