package persistence

import (
	"context"
	"testing"

	"github.com/genomelab/genedex/domain/gene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotationStore_ListByGene(t *testing.T) {
	ctx := context.Background()
	store := NewAnnotationStore(newSeededDB(t))

	annotations, err := store.ListByGene(ctx, 7157)
	require.NoError(t, err)
	require.Len(t, annotations, 3)

	// Category, then term, so the bucketed ontology renders stably.
	assert.Equal(t, gene.CategoryComponent, annotations[0].Category())
	assert.Equal(t, "nucleus", annotations[0].Term())
	assert.Equal(t, gene.CategoryFunction, annotations[1].Category())
	assert.Equal(t, "DNA binding", annotations[1].Term())
	assert.Equal(t, gene.CategoryProcess, annotations[2].Category())
	assert.Equal(t, "apoptotic process", annotations[2].Term())
}

func TestAnnotationStore_ListByGene_Ontology(t *testing.T) {
	ctx := context.Background()
	store := NewAnnotationStore(newSeededDB(t))

	annotations, err := store.ListByGene(ctx, 3630)
	require.NoError(t, err)

	ontology := gene.NewOntology(annotations)
	require.Len(t, ontology.Function(), 1)
	require.Len(t, ontology.Process(), 1)
	assert.Empty(t, ontology.Component())
	assert.Equal(t, "GO:0005179", ontology.Function()[0].TermID())
}

func TestAnnotationStore_ListByGene_None(t *testing.T) {
	ctx := context.Background()
	store := NewAnnotationStore(newSeededDB(t))

	annotations, err := store.ListByGene(ctx, 16334)
	require.NoError(t, err)
	assert.Empty(t, annotations)
}
