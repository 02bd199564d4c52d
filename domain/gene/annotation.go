package gene

import (
	"fmt"
	"strings"
)

// GOCategory is a Gene Ontology aspect.
type GOCategory string

// GOCategory values, as stored in the annotation tables.
const (
	CategoryFunction  GOCategory = "Function"
	CategoryProcess   GOCategory = "Process"
	CategoryComponent GOCategory = "Component"
)

// ParseGOCategory normalizes a case-insensitive category name.
func ParseGOCategory(s string) (GOCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "function":
		return CategoryFunction, nil
	case "process":
		return CategoryProcess, nil
	case "component":
		return CategoryComponent, nil
	default:
		return "", fmt.Errorf("unknown GO category %q", s)
	}
}

// Annotation is one Gene Ontology term linked to a gene. Duplicate terms
// across evidence codes may exist and pass through unchanged.
type Annotation struct {
	geneID   int64
	category GOCategory
	termID   string
	term     string
}

// NewAnnotation creates an Annotation.
func NewAnnotation(geneID int64, category GOCategory, termID, term string) Annotation {
	return Annotation{
		geneID:   geneID,
		category: category,
		termID:   termID,
		term:     term,
	}
}

// GeneID returns the annotated gene id.
func (a Annotation) GeneID() int64 { return a.geneID }

// Category returns the GO aspect.
func (a Annotation) Category() GOCategory { return a.category }

// TermID returns the GO term accession ("GO:0005179").
func (a Annotation) TermID() string { return a.termID }

// Term returns the GO term label.
func (a Annotation) Term() string { return a.term }

// Ontology buckets a gene's annotations by aspect, preserving store order
// within each bucket.
type Ontology struct {
	function  []Annotation
	process   []Annotation
	component []Annotation
}

// NewOntology buckets annotations by category. Annotations with an unknown
// category are dropped.
func NewOntology(annotations []Annotation) Ontology {
	var o Ontology
	for _, a := range annotations {
		switch a.Category() {
		case CategoryFunction:
			o.function = append(o.function, a)
		case CategoryProcess:
			o.process = append(o.process, a)
		case CategoryComponent:
			o.component = append(o.component, a)
		}
	}
	return o
}

// Function returns the molecular-function annotations.
func (o Ontology) Function() []Annotation { return o.function }

// Process returns the biological-process annotations.
func (o Ontology) Process() []Annotation { return o.process }

// Component returns the cellular-component annotations.
func (o Ontology) Component() []Annotation { return o.component }

// IsEmpty returns true when no bucket has annotations.
func (o Ontology) IsEmpty() bool {
	return len(o.function) == 0 && len(o.process) == 0 && len(o.component) == 0
}

// Len returns the total annotation count across buckets.
func (o Ontology) Len() int {
	return len(o.function) + len(o.process) + len(o.component)
}
