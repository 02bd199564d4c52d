package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/genomelab/genedex/domain/storage"
	"github.com/genomelab/genedex/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneStore_FindByID(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)
	store := NewGeneStore(db)

	g, err := store.FindByID(ctx, 3630)
	require.NoError(t, err)
	assert.Equal(t, int64(3630), g.ID())
	assert.Equal(t, "INS", g.Symbol())
	assert.Equal(t, int64(9606), g.TaxID())
	assert.Equal(t, "11p15.5", g.MapLocation())
}

func TestGeneStore_FindByID_NotFound(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)
	store := NewGeneStore(db)

	_, err := store.FindByID(ctx, 999999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, database.ErrNotFound))
}

func TestGeneStore_FindByChromosome(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)
	store := NewGeneStore(db)

	genes, err := store.FindByChromosome(ctx, 9606, "11")
	require.NoError(t, err)
	require.Len(t, genes, 1)
	assert.Equal(t, "INS", genes[0].Symbol())

	// The mouse gene on chromosome 7 must not leak into human results.
	genes, err = store.FindByChromosome(ctx, 9606, "7")
	require.NoError(t, err)
	assert.Empty(t, genes)
}

func TestGeneStore_ListChromosomes(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)
	store := NewGeneStore(db)

	counts, err := store.ListChromosomes(ctx, 9606)
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byLabel := make(map[string]int64, len(counts))
	for _, c := range counts {
		byLabel[c.Label()] = c.Count()
	}
	assert.Equal(t, int64(1), byLabel["11"])
	assert.Equal(t, int64(1), byLabel["17"])
}

func TestGeneStore_Region(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)
	store := NewGeneStore(db)

	genes, err := store.Region(ctx, 9606, "11", "p15", 500)
	require.NoError(t, err)
	require.Len(t, genes, 1)
	assert.Equal(t, "INS", genes[0].Symbol())

	genes, err = store.Region(ctx, 9606, "11", "q13", 500)
	require.NoError(t, err)
	assert.Empty(t, genes)
}

func TestGeneStore_Region_Limit(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	session := db.Session(ctx)

	for i := int64(1); i <= 10; i++ {
		require.NoError(t, session.Create(&GeneModel{
			ID: i, TaxID: 9606, Symbol: "G", Chromosome: "1", MapLocation: "1p36.1",
		}).Error)
	}

	store := NewGeneStore(db)
	genes, err := store.Region(ctx, 9606, "1", "p36", 5)
	require.NoError(t, err)
	assert.Len(t, genes, 5)
}

func TestGeneStore_CollectionSurface(t *testing.T) {
	ctx := context.Background()
	db := newSeededDB(t)
	store := NewGeneStore(db)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	exists, err := store.Exists(ctx, storage.WithSymbol("TP53"))
	require.NoError(t, err)
	assert.True(t, exists)

	genes, err := store.Find(ctx, storage.WithTaxID(10090))
	require.NoError(t, err)
	require.Len(t, genes, 1)
	assert.Equal(t, "Ins2", genes[0].Symbol())
}
