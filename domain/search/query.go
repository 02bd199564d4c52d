// Package search provides the gene search domain: queries, filters, ranked
// hits, and the text index interface the annotation store implements.
package search

import (
	"errors"
	"strings"
)

// Result list bounds. The default is configurable at the service level; the
// ceiling is not.
const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// ErrEmptyTerm indicates a query term that is empty after trimming.
var ErrEmptyTerm = errors.New("search term is empty")

// Query is one validated search request.
type Query struct {
	term    string
	filters Filters
	limit   int
}

// NewQuery creates a Query. The term is trimmed and must be non-empty; a
// non-positive limit falls back to DefaultLimit and the ceiling is MaxLimit.
func NewQuery(term string, filters Filters, limit int) (Query, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return Query{}, ErrEmptyTerm
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Query{term: term, filters: filters, limit: limit}, nil
}

// Term returns the trimmed query term.
func (q Query) Term() string { return q.term }

// Filters returns the active filters.
func (q Query) Filters() Filters { return q.filters }

// Limit returns the result cap.
func (q Query) Limit() int { return q.limit }
