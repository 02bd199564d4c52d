package gene

// FunctionalSummary is a curated prose summary of a gene's function.
// Zero or one per gene.
type FunctionalSummary struct {
	geneID int64
	text   string
	source string
}

// NewFunctionalSummary creates a FunctionalSummary.
func NewFunctionalSummary(geneID int64, text, source string) FunctionalSummary {
	return FunctionalSummary{geneID: geneID, text: text, source: source}
}

// GeneID returns the gene id.
func (s FunctionalSummary) GeneID() int64 { return s.geneID }

// Text returns the summary prose.
func (s FunctionalSummary) Text() string { return s.text }

// Source returns the source tag ("RefSeq").
func (s FunctionalSummary) Source() string { return s.source }
