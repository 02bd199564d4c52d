package search

import "context"

// Document is one gene's indexable text, split by match source so the index
// can label which field family produced a hit.
type Document struct {
	geneID   int64
	core     string
	synonyms string
	goTerms  string
	traits   string
}

// NewDocument creates a Document. core concatenates symbol, name,
// description, and gene type; the remaining fields concatenate their
// respective annotation texts.
func NewDocument(geneID int64, core, synonyms, goTerms, traits string) Document {
	return Document{
		geneID:   geneID,
		core:     core,
		synonyms: synonyms,
		goTerms:  goTerms,
		traits:   traits,
	}
}

// GeneID returns the document's gene id.
func (d Document) GeneID() int64 { return d.geneID }

// Core returns the symbol/name/description/type text.
func (d Document) Core() string { return d.core }

// Synonyms returns the synonym text.
func (d Document) Synonyms() string { return d.synonyms }

// GOTerms returns the GO term label text.
func (d Document) GOTerms() string { return d.goTerms }

// Traits returns the trait text.
func (d Document) Traits() string { return d.traits }

// TextIndex is the full-text lookup the annotation store exposes.
type TextIndex interface {
	// Search returns ranked, deduplicated, filter-satisfying hits for the
	// query, capped at the query limit. Implementations fall back to
	// substring matching over core fields when the text engine cannot
	// parse or serve the term.
	Search(ctx context.Context, query Query) ([]Hit, error)

	// Index upserts documents into the text index.
	Index(ctx context.Context, docs []Document) error

	// Rebuild recomposes the whole index from the annotation tables.
	Rebuild(ctx context.Context) error
}

// DisplayStore fetches the denormalized display rows for ranked gene ids.
type DisplayStore interface {
	DisplayRows(ctx context.Context, geneIDs []int64) (map[int64]DisplayRow, error)
}
