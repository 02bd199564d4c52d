package search

import (
	"context"
	"testing"

	"github.com/genomelab/genedex/domain/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func likeHits(t *testing.T, term string, filters search.Filters) []search.Hit {
	t.Helper()
	db := newAtlasDB(t)
	hits, err := likeSearch(context.Background(), db.GORM(), mustQuery(t, term, filters, 50))
	require.NoError(t, err)
	return hits
}

func ids(hits []search.Hit) []int64 {
	out := make([]int64, len(hits))
	for i, h := range hits {
		out[i] = h.GeneID()
	}
	return out
}

func TestLikeSearch_Ranking(t *testing.T) {
	hits := likeHits(t, "ins", search.NewFilters())

	// Exact symbol first, then symbol prefixes ordered by gene id.
	require.Equal(t, []int64{3630, 3643, 5001, 5002, 16334}, ids(hits))

	assert.Equal(t, 3.0, hits[0].Score())
	assert.Equal(t, "INS", hits[0].Matched())
	assert.Equal(t, search.SourceGene, hits[0].Source())

	assert.Equal(t, 2.0, hits[1].Score())
	assert.Equal(t, "INSR", hits[1].Matched())
}

func TestLikeSearch_NameMatch(t *testing.T) {
	hits := likeHits(t, "protein", search.NewFilters())

	require.Len(t, hits, 1)
	assert.Equal(t, int64(7157), hits[0].GeneID())
	assert.Equal(t, 1.0, hits[0].Score())
	assert.Equal(t, "tumor protein p53", hits[0].Matched())
}

func TestLikeSearch_CaseInsensitive(t *testing.T) {
	hits := likeHits(t, "INSULIN", search.NewFilters())
	assert.Contains(t, ids(hits), int64(3630))
}

func TestLikeSearch_Limit(t *testing.T) {
	db := newAtlasDB(t)
	hits, err := likeSearch(context.Background(), db.GORM(), mustQuery(t, "ins", search.NewFilters(), 2))
	require.NoError(t, err)
	require.Equal(t, []int64{3630, 3643}, ids(hits))
}

func TestLikeSearch_NoMatches(t *testing.T) {
	hits := likeHits(t, "unobtainium", search.NewFilters())
	assert.Empty(t, hits)
}

func TestLikeSearch_Filters(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		filters  search.Filters
		expected []int64
	}{
		{
			name:     "species",
			term:     "ins",
			filters:  search.NewFilters(search.WithSpecies(10090)),
			expected: []int64{16334},
		},
		{
			name:     "chromosome",
			term:     "ins",
			filters:  search.NewFilters(search.WithChromosome("11")),
			expected: []int64{3630, 5001, 5002},
		},
		{
			name:     "tier essential",
			term:     "ins",
			filters:  search.NewFilters(search.WithConstraintTier(search.TierEssential)),
			expected: []int64{3643},
		},
		{
			name:     "tier constrained",
			term:     "ins",
			filters:  search.NewFilters(search.WithConstraintTier(search.TierConstrained)),
			expected: []int64{3643},
		},
		{
			name:    "tier tolerant",
			term:    "ins",
			filters: search.NewFilters(search.WithConstraintTier(search.TierTolerant)),
			// Genes without constraint metrics count as tolerant.
			expected: []int64{3630, 5001, 5002, 16334},
		},
		{
			name:     "bucket pathogenic",
			term:     "p53",
			filters:  search.NewFilters(search.WithClinicalBucket(search.BucketPathogenic)),
			expected: []int64{7157},
		},
		{
			name:     "bucket gwas excludes clinical-only genes",
			term:     "p53",
			filters:  search.NewFilters(search.WithClinicalBucket(search.BucketGWAS)),
			expected: []int64{},
		},
		{
			name:     "bucket gwas",
			term:     "ins",
			filters:  search.NewFilters(search.WithClinicalBucket(search.BucketGWAS)),
			expected: []int64{3630},
		},
		{
			name:     "bucket disease",
			term:     "ins",
			filters:  search.NewFilters(search.WithClinicalBucket(search.BucketDisease)),
			expected: []int64{3630},
		},
		{
			name:     "type protein coding",
			term:     "ins",
			filters:  search.NewFilters(search.WithGeneType(search.TypeProteinCoding)),
			expected: []int64{3630, 3643, 16334},
		},
		{
			name:     "type pseudo",
			term:     "ins",
			filters:  search.NewFilters(search.WithGeneType(search.TypePseudo)),
			expected: []int64{5001},
		},
		{
			name:     "type ncRNA",
			term:     "ins",
			filters:  search.NewFilters(search.WithGeneType(search.TypeNonCodingRNA)),
			expected: []int64{5002},
		},
		{
			name:     "type other",
			term:     "ins",
			filters:  search.NewFilters(search.WithGeneType(search.TypeOther)),
			expected: []int64{},
		},
		{
			name:     "go function",
			term:     "ins",
			filters:  search.NewFilters(search.WithGOFilter(search.GOFunction)),
			expected: []int64{3630},
		},
		{
			name:     "go component",
			term:     "ins",
			filters:  search.NewFilters(search.WithGOFilter(search.GOComponent)),
			expected: []int64{},
		},
		{
			name:     "go any",
			term:     "ins",
			filters:  search.NewFilters(search.WithGOFilter(search.GOAny)),
			expected: []int64{3630},
		},
		{
			name: "combined",
			term: "ins",
			filters: search.NewFilters(
				search.WithSpecies(9606),
				search.WithChromosome("11"),
				search.WithGeneType(search.TypeProteinCoding),
			),
			expected: []int64{3630},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := likeHits(t, tt.term, tt.filters)
			if len(tt.expected) == 0 {
				assert.Empty(t, hits)
				return
			}
			assert.Equal(t, tt.expected, ids(hits))
		})
	}
}

func TestLikeMatched(t *testing.T) {
	assert.Equal(t, "INS", likeMatched("INS", "insulin", "encodes insulin", "ins"))
	assert.Equal(t, "insulin receptor", likeMatched("INSR2X", "insulin receptor", "", "rece"))
	assert.Equal(t, "binds insulin", likeMatched("TP53", "tumor protein", "binds insulin", "ins"))
}

func TestExcerpt(t *testing.T) {
	long := "The quick brown fox jumps over the lazy dog near the riverbank while" +
		" the insulin molecule folds into its active conformation under" +
		" physiological conditions observed in the pancreas."

	got := excerpt(long, "insulin")
	assert.Contains(t, got, "insulin")
	assert.True(t, len(got) < len(long))
	assert.Contains(t, got, "…")

	// Term at the start keeps the head of the text unprefixed.
	got = excerpt("insulin regulates glucose", "insulin")
	assert.Equal(t, "insulin regulates glucose", got)

	// Missing term truncates instead of windowing.
	got = excerpt(long, "absent")
	assert.Contains(t, got, "…")
	assert.Less(t, len(got), len(long))
}
