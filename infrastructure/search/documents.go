package search

import (
	"context"
	"strings"

	"github.com/genomelab/genedex/domain/search"
	"gorm.io/gorm"
)

// Snippet highlight markers. Stripped from matched text before it leaves
// the index; only mark detection uses them.
const (
	markStart = "[["
	markEnd   = "]]"
)

var markStripper = strings.NewReplacer(markStart, "", markEnd, "")

func stripMarks(s string) string {
	return markStripper.Replace(s)
}

// documentRecord is the scan target for the per-gene document composition
// queries. Both dialects produce the same shape.
type documentRecord struct {
	GeneID   int64  `gorm:"column:gene_id"`
	Core     string `gorm:"column:core"`
	Synonyms string `gorm:"column:synonyms"`
	GOTerms  string `gorm:"column:go_terms"`
	Traits   string `gorm:"column:traits"`
}

// loadDocuments composes one document per gene from the annotation tables.
func loadDocuments(ctx context.Context, db *gorm.DB, composeQuery string) ([]search.Document, error) {
	var records []documentRecord
	if err := db.WithContext(ctx).Raw(composeQuery).Scan(&records).Error; err != nil {
		return nil, err
	}

	docs := make([]search.Document, len(records))
	for i, r := range records {
		docs[i] = search.NewDocument(r.GeneID, r.Core, r.Synonyms, r.GOTerms, r.Traits)
	}
	return docs, nil
}
