package persistence

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/genomelab/genedex/internal/database"
	"github.com/stretchr/testify/require"
)

// testDBCounter gives each in-memory database a unique shared-cache name.
var testDBCounter atomic.Int64

// newTestDB creates a migrated in-memory SQLite database for testing.
// Cannot use the testdb package here due to import cycle (testdb imports
// persistence).
func newTestDB(t *testing.T) database.Database {
	t.Helper()
	ctx := context.Background()
	url := fmt.Sprintf("sqlite://file:persistence-test-%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := database.NewDatabase(ctx, url)
	require.NoError(t, err)
	require.NoError(t, db.ConfigurePool(1, 1, 0))
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, AutoMigrate(db))
	return db
}

func floatPtr(v float64) *float64 { return &v }

// seedGenome inserts a small cross-species fixture: two human genes with
// the full annotation spread and one mouse gene with none.
func seedGenome(t *testing.T, db database.Database) {
	t.Helper()
	ctx := context.Background()
	session := db.Session(ctx)

	genes := []GeneModel{
		{
			ID: 3630, TaxID: 9606, Symbol: "INS", Name: "insulin",
			Chromosome: "11", MapLocation: "11p15.5", GeneType: "protein-coding",
			Description: "This gene encodes insulin, a peptide hormone regulating glucose.",
		},
		{
			ID: 7157, TaxID: 9606, Symbol: "TP53", Name: "tumor protein p53",
			Chromosome: "17", MapLocation: "17p13.1", GeneType: "protein-coding",
			Description: "Tumor suppressor responding to cellular stresses.",
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

	synonyms := []SynonymModel{
		{GeneID: 3630, Synonym: "ILPR"},
		{GeneID: 3630, Synonym: "IRDN"},
		{GeneID: 7157, Synonym: "p53"},
		{GeneID: 7157, Synonym: "LFS1"},
	}
	for _, s := range synonyms {
		require.NoError(t, session.Create(&s).Error)
	}

	annotations := []AnnotationModel{
		{GeneID: 3630, Category: "Function", TermID: "GO:0005179", Term: "hormone activity"},
		{GeneID: 3630, Category: "Process", TermID: "GO:0042593", Term: "glucose homeostasis"},
		{GeneID: 7157, Category: "Function", TermID: "GO:0003677", Term: "DNA binding"},
		{GeneID: 7157, Category: "Process", TermID: "GO:0006915", Term: "apoptotic process"},
		{GeneID: 7157, Category: "Component", TermID: "GO:0005634", Term: "nucleus"},
	}
	for _, a := range annotations {
		require.NoError(t, session.Create(&a).Error)
	}

	traits := []TraitModel{
		{GeneID: 3630, Trait: "Type 1 diabetes", SNPID: "rs689", PValue: floatPtr(2e-28), PValueText: "2e-28", RiskAllele: "T", PubmedID: "17554300"},
		{GeneID: 3630, Trait: "Type 2 diabetes", SNPID: "rs3842753", PValue: floatPtr(4e-9), PValueText: "4e-9"},
		{GeneID: 3630, Trait: "Fasting insulin", SNPID: "rs11603334", PValue: nil, PValueText: ""},
	}
	for _, tr := range traits {
		require.NoError(t, session.Create(&tr).Error)
	}

	constraints := []ConstraintModel{
		{GeneID: 7157, Transcript: "ENST00000269305", PLI: floatPtr(0.53), LOEUF: floatPtr(0.804), MisZ: floatPtr(4.2), Version: "v2.1.1"},
		{GeneID: 7157, Transcript: "ENST00000269305", PLI: floatPtr(0.68), LOEUF: floatPtr(0.73), MisZ: floatPtr(4.43), Version: "v4.1"},
	}
	for _, c := range constraints {
		require.NoError(t, session.Create(&c).Error)
	}

	require.NoError(t, session.Create(&ClinicalSummaryModel{
		GeneID: 7157, TotalSubmissions: 4210, TotalAlleles: 2470,
		PathogenicAlleles: 1694, UncertainAlleles: 520, ConflictingAlleles: 77,
		MIMNumber: "191170",
	}).Error)

	variants := []ClinicalVariantModel{
		{AlleleID: 12351, GeneID: 7157, Name: "NM_000546.6(TP53):c.743G>A (p.Arg248Gln)", VariantType: "single nucleotide variant", Significance: "Pathogenic", ReviewStatus: "reviewed by expert panel", Chromosome: "17", Start: 7674220, RsID: "rs11540652"},
		{AlleleID: 12356, GeneID: 7157, Name: "NM_000546.6(TP53):c.818G>A (p.Arg273His)", VariantType: "single nucleotide variant", Significance: "Pathogenic", ReviewStatus: "criteria provided, multiple submitters, no conflicts", Chromosome: "17", Start: 7673802, RsID: "rs28934576"},
		{AlleleID: 12400, GeneID: 7157, Name: "NM_000546.6(TP53):c.215C>G (p.Pro72Arg)", VariantType: "single nucleotide variant", Significance: "Benign", ReviewStatus: "practice guideline", Chromosome: "17", Start: 7676154, RsID: "rs1042522"},
	}
	for _, v := range variants {
		require.NoError(t, session.Create(&v).Error)
	}

	require.NoError(t, session.Create(&GeneSummaryModel{
		GeneID:  3630,
		Summary: "After removal of the precursor signal peptide, proinsulin is post-translationally cleaved into three peptides.",
		Source:  "RefSeq",
	}).Error)

	// Denormalized species gene counts used by the catalog surfaces.
	require.NoError(t, session.Exec("UPDATE species SET gene_count = 2 WHERE tax_id = 9606").Error)
	require.NoError(t, session.Exec("UPDATE species SET gene_count = 1 WHERE tax_id = 10090").Error)
}

// newSeededDB creates a migrated database with the species catalog and the
// genome fixture loaded.
func newSeededDB(t *testing.T) database.Database {
	t.Helper()
	db := newTestDB(t)
	_, err := SeedSpecies(context.Background(), db)
	require.NoError(t, err)
	seedGenome(t, db)
	return db
}
