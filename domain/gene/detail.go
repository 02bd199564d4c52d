package gene

// Detail is the aggregated view of one gene across every annotation source.
// Optional sections are explicit typed absences: nil pointers or empty
// lists, never partially-populated hybrids.
type Detail struct {
	gene       Gene
	species    Species
	summary    *FunctionalSummary
	ontology   Ontology
	traits     TraitList
	constraint *ConstraintMetrics
	clinical   *ClinicalRecord
	degraded   []string
}

// NewDetail creates a Detail for a gene and its species, with every
// optional section absent.
func NewDetail(g Gene, species Species) Detail {
	return Detail{gene: g, species: species}
}

// Gene returns the core gene record.
func (d Detail) Gene() Gene { return d.gene }

// Species returns the gene's species.
func (d Detail) Species() Species { return d.species }

// Summary returns the functional summary, or nil when absent.
func (d Detail) Summary() *FunctionalSummary {
	if d.summary == nil {
		return nil
	}
	s := *d.summary
	return &s
}

// Ontology returns the bucketed GO annotations.
func (d Detail) Ontology() Ontology { return d.ontology }

// Traits returns the bounded trait selection with its true total.
func (d Detail) Traits() TraitList { return d.traits }

// Constraint returns the constraint metrics, or nil when absent.
func (d Detail) Constraint() *ConstraintMetrics {
	if d.constraint == nil {
		return nil
	}
	c := *d.constraint
	return &c
}

// Clinical returns the clinical record, or nil when absent.
func (d Detail) Clinical() *ClinicalRecord {
	if d.clinical == nil {
		return nil
	}
	c := *d.clinical
	return &c
}

// Degraded returns the names of sections omitted because their source
// failed during aggregation. Empty for a fully-aggregated record.
func (d Detail) Degraded() []string {
	if d.degraded == nil {
		return nil
	}
	result := make([]string, len(d.degraded))
	copy(result, d.degraded)
	return result
}

// WithSummary returns a copy with the functional summary attached.
func (d Detail) WithSummary(s FunctionalSummary) Detail {
	d.summary = &s
	return d
}

// WithOntology returns a copy with the GO annotation buckets attached.
func (d Detail) WithOntology(o Ontology) Detail {
	d.ontology = o
	return d
}

// WithTraits returns a copy with the trait selection attached.
func (d Detail) WithTraits(t TraitList) Detail {
	d.traits = t
	return d
}

// WithConstraint returns a copy with the constraint metrics attached.
func (d Detail) WithConstraint(c ConstraintMetrics) Detail {
	d.constraint = &c
	return d
}

// WithClinical returns a copy with the clinical record attached.
func (d Detail) WithClinical(c ClinicalRecord) Detail {
	d.clinical = &c
	return d
}

// WithDegraded returns a copy recording that a section was omitted because
// its source failed.
func (d Detail) WithDegraded(section string) Detail {
	degraded := make([]string, len(d.degraded), len(d.degraded)+1)
	copy(degraded, d.degraded)
	d.degraded = append(degraded, section)
	return d
}
