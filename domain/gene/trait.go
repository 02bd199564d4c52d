package gene

// TraitAssociation is one statistical gene-phenotype link from association
// studies. p-value and odds ratio are absent when the study did not report
// them; absent never means zero.
type TraitAssociation struct {
	geneID     int64
	trait      string
	snpID      string
	pValue     *float64
	pValueText string
	riskAllele string
	oddsRatio  *float64
	pubmedID   string
}

// NewTraitAssociation creates a TraitAssociation.
func NewTraitAssociation(geneID int64, trait, snpID string) TraitAssociation {
	return TraitAssociation{geneID: geneID, trait: trait, snpID: snpID}
}

// ReconstructTraitAssociation creates a TraitAssociation from persisted state.
func ReconstructTraitAssociation(
	geneID int64,
	trait string,
	snpID string,
	pValue *float64,
	pValueText string,
	riskAllele string,
	oddsRatio *float64,
	pubmedID string,
) TraitAssociation {
	return TraitAssociation{
		geneID:     geneID,
		trait:      trait,
		snpID:      snpID,
		pValue:     copyFloat(pValue),
		pValueText: pValueText,
		riskAllele: riskAllele,
		oddsRatio:  copyFloat(oddsRatio),
		pubmedID:   pubmedID,
	}
}

// GeneID returns the associated gene id.
func (t TraitAssociation) GeneID() int64 { return t.geneID }

// Trait returns the reported trait text.
func (t TraitAssociation) Trait() string { return t.trait }

// SNPID returns the SNP identifier ("rs7903146").
func (t TraitAssociation) SNPID() string { return t.snpID }

// PValue returns the association p-value, if reported.
func (t TraitAssociation) PValue() (float64, bool) {
	if t.pValue == nil {
		return 0, false
	}
	return *t.pValue, true
}

// PValueText returns the p-value as reported in the study ("2 x 10-41").
func (t TraitAssociation) PValueText() string { return t.pValueText }

// RiskAllele returns the risk allele, if reported.
func (t TraitAssociation) RiskAllele() string { return t.riskAllele }

// OddsRatio returns the odds ratio, if reported.
func (t TraitAssociation) OddsRatio() (float64, bool) {
	if t.oddsRatio == nil {
		return 0, false
	}
	return *t.oddsRatio, true
}

// PubmedID returns the publication id of the source study.
func (t TraitAssociation) PubmedID() string { return t.pubmedID }

// TraitList is a bounded trait selection carrying the true total count.
type TraitList struct {
	items []TraitAssociation
	total int64
}

// NewTraitList creates a TraitList from a bounded selection and the true
// association count.
func NewTraitList(items []TraitAssociation, total int64) TraitList {
	copied := make([]TraitAssociation, len(items))
	copy(copied, items)
	return TraitList{items: copied, total: total}
}

// Items returns the bounded trait selection.
func (l TraitList) Items() []TraitAssociation {
	result := make([]TraitAssociation, len(l.items))
	copy(result, l.items)
	return result
}

// Total returns the true association count, which may exceed len(Items()).
func (l TraitList) Total() int64 { return l.total }

// IsEmpty returns true when the gene has no trait associations.
func (l TraitList) IsEmpty() bool { return l.total == 0 }

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
