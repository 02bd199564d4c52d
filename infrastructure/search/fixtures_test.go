package search

import (
	"context"
	"testing"

	"github.com/genomelab/genedex/domain/search"
	"github.com/genomelab/genedex/infrastructure/persistence"
	"github.com/genomelab/genedex/internal/database"
	"github.com/genomelab/genedex/internal/testdb"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

// seedAtlas loads a small human/mouse gene set with enough annotation
// spread to exercise every filter branch.
func seedAtlas(t *testing.T, db database.Database) {
	t.Helper()
	ctx := context.Background()
	session := db.Session(ctx)

	genes := []persistence.GeneModel{
		{
			ID: 3630, TaxID: 9606, Symbol: "INS", Name: "insulin",
			Chromosome: "11", MapLocation: "11p15.5", GeneType: "protein-coding",
			Description: "This gene encodes insulin, a peptide hormone regulating glucose.",
		},
		{
			ID: 3643, TaxID: 9606, Symbol: "INSR", Name: "insulin receptor",
			Chromosome: "19", MapLocation: "19p13.2", GeneType: "protein-coding",
			Description: "Receptor tyrosine kinase binding insulin.",
		},
		{
			ID: 7157, TaxID: 9606, Symbol: "TP53", Name: "tumor protein p53",
			Chromosome: "17", MapLocation: "17p13.1", GeneType: "protein-coding",
			Description: "Tumor suppressor responding to cellular stresses.",
		},
		{
			ID: 5001, TaxID: 9606, Symbol: "INSP1", Name: "insulin pseudogene 1",
			Chromosome: "11", MapLocation: "11p15.5", GeneType: "pseudo",
			Description: "Processed pseudogene.",
		},
		{
			ID: 5002, TaxID: 9606, Symbol: "INS-AS1", Name: "INS antisense RNA 1",
			Chromosome: "11", MapLocation: "11p15.5", GeneType: "ncRNA",
			Description: "Antisense transcript at the INS locus.",
		},
		{
			ID: 16334, TaxID: 10090, Symbol: "Ins2", Name: "insulin II",
			Chromosome: "7", MapLocation: "7 F1", GeneType: "protein-coding",
			Description: "Mouse insulin gene.",
		},
	}
	for _, g := range genes {
		require.NoError(t, session.Create(&g).Error)
	}

	synonyms := []persistence.SynonymModel{
		{GeneID: 3630, Synonym: "ILPR"},
		{GeneID: 3630, Synonym: "IRDN"},
		{GeneID: 7157, Synonym: "p53"},
		{GeneID: 7157, Synonym: "LFS1"},
	}
	for _, s := range synonyms {
		require.NoError(t, session.Create(&s).Error)
	}

	annotations := []persistence.AnnotationModel{
		{GeneID: 3630, Category: "Function", TermID: "GO:0005179", Term: "hormone activity"},
		{GeneID: 3630, Category: "Process", TermID: "GO:0042593", Term: "glucose homeostasis"},
		{GeneID: 7157, Category: "Function", TermID: "GO:0003677", Term: "DNA binding"},
		{GeneID: 7157, Category: "Process", TermID: "GO:0006915", Term: "apoptotic process"},
		{GeneID: 7157, Category: "Component", TermID: "GO:0005634", Term: "nucleus"},
	}
	for _, a := range annotations {
		require.NoError(t, session.Create(&a).Error)
	}

	traits := []persistence.TraitModel{
		{GeneID: 3630, Trait: "Type 1 diabetes", SNPID: "rs689", PValue: fp(2e-28), PValueText: "2e-28"},
		{GeneID: 3630, Trait: "Type 2 diabetes", SNPID: "rs3842753", PValue: fp(4e-9), PValueText: "4e-9"},
	}
	for _, tr := range traits {
		require.NoError(t, session.Create(&tr).Error)
	}

	constraints := []persistence.ConstraintModel{
		{GeneID: 3630, Transcript: "ENST00000381330", PLI: fp(0.02), LOEUF: fp(1.69), Version: "v4.1"},
		{GeneID: 3643, Transcript: "ENST00000302850", PLI: fp(0.997), LOEUF: fp(0.27), Version: "v4.1"},
		{GeneID: 7157, Transcript: "ENST00000269305", PLI: fp(0.68), LOEUF: fp(0.73), Version: "v4.1"},
	}
	for _, c := range constraints {
		require.NoError(t, session.Create(&c).Error)
	}

	require.NoError(t, session.Create(&persistence.ClinicalSummaryModel{
		GeneID: 7157, TotalSubmissions: 4210, TotalAlleles: 2470,
		PathogenicAlleles: 1694, UncertainAlleles: 520, ConflictingAlleles: 77,
		MIMNumber: "191170",
	}).Error)
}

// newAtlasDB creates a migrated database with the fixture loaded.
func newAtlasDB(t *testing.T) database.Database {
	t.Helper()
	db := testdb.New(t)
	seedAtlas(t, db)
	return db
}

// newFTSIndex creates a rebuilt SQLite index, skipping the test when the
// FTS5 module is missing from the build.
func newFTSIndex(t *testing.T, db database.Database) *SQLiteTextIndex {
	t.Helper()
	idx := NewSQLiteTextIndex(db.GORM(), nil)
	if err := idx.initialize(context.Background()); err != nil {
		t.Skipf("fts5 unavailable: %v", err)
	}
	require.NoError(t, idx.Rebuild(context.Background()))
	return idx
}

// mustQuery builds a validated query for tests.
func mustQuery(t *testing.T, term string, filters search.Filters, limit int) search.Query {
	t.Helper()
	q, err := search.NewQuery(term, filters, limit)
	require.NoError(t, err)
	return q
}
