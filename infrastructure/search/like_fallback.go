package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/genomelab/genedex/domain/search"
	"gorm.io/gorm"
)

// likeSearch is the substring fallback used when the full-text engine
// cannot parse or serve a term. It matches core fields only with fixed
// rank weights: exact symbol, then symbol prefix, then any other match.
func likeSearch(ctx context.Context, db *gorm.DB, query search.Query) ([]search.Hit, error) {
	term := strings.ToLower(query.Term())
	pattern := "%" + term + "%"

	tx := db.WithContext(ctx).
		Table("genes").
		Select(`genes.id, genes.symbol, genes.name, genes.description,
CASE
    WHEN LOWER(genes.symbol) = ? THEN 3.0
    WHEN LOWER(genes.symbol) LIKE ? THEN 2.0
    ELSE 1.0
END AS weight`, term, term+"%").
		Where("LOWER(genes.symbol) LIKE ? OR LOWER(genes.name) LIKE ? OR LOWER(genes.description) LIKE ?",
			pattern, pattern, pattern)

	tx = applySearchFilters(tx, "genes.id", query.Filters())
	tx = tx.Order("weight DESC").Order("genes.id").Limit(query.Limit())

	var rows []struct {
		ID          int64   `gorm:"column:id"`
		Symbol      string  `gorm:"column:symbol"`
		Name        string  `gorm:"column:name"`
		Description string  `gorm:"column:description"`
		Weight      float64 `gorm:"column:weight"`
	}
	if err := tx.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("substring search: %w", err)
	}

	hits := make([]search.Hit, len(rows))
	for i, row := range rows {
		matched := likeMatched(row.Symbol, row.Name, row.Description, term)
		hits[i] = search.NewHit(row.ID, row.Weight, matched, search.SourceGene)
	}
	return hits, nil
}

// likeMatched labels the hit with the first core field containing the term.
func likeMatched(symbol, name, description, lowerTerm string) string {
	if strings.Contains(strings.ToLower(symbol), lowerTerm) {
		return symbol
	}
	if strings.Contains(strings.ToLower(name), lowerTerm) {
		return name
	}
	return excerpt(description, lowerTerm)
}

// excerpt trims a description match to a window around its first
// occurrence.
func excerpt(text, lowerTerm string) string {
	const window = 40

	idx := strings.Index(strings.ToLower(text), lowerTerm)
	if idx < 0 {
		if len(text) > 2*window {
			return text[:2*window] + "…"
		}
		return text
	}

	start := idx - window
	if start < 0 {
		start = 0
	}
	end := idx + len(lowerTerm) + window
	if end > len(text) {
		end = len(text)
	}

	out := text[start:end]
	if start > 0 {
		out = "…" + out
	}
	if end < len(text) {
		out += "…"
	}
	return out
}
