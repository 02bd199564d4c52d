package e2e_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/genomelab/genedex"
	"github.com/genomelab/genedex/infrastructure/api"
	apimiddleware "github.com/genomelab/genedex/infrastructure/api/middleware"
	"github.com/genomelab/genedex/infrastructure/persistence"
	"github.com/genomelab/genedex/internal/database"
)

// adminToken guards the admin subtree in every e2e server.
const adminToken = "e2e-admin-token"

// TestServer wraps a fully assembled API server for e2e testing.
type TestServer struct {
	t          *testing.T
	client     *genedex.Client
	httpServer *httptest.Server
}

// NewTestServer seeds a catalog database, opens a genedex client on it, and
// assembles the HTTP stack the way the serve command does. The catalog rows
// must exist before the client opens so the startup index build sees them.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	seedCatalog(t, dbPath)

	client, err := genedex.New(
		genedex.WithSQLite(dbPath),
		genedex.WithDataDir(tmpDir),
	)
	if err != nil {
		t.Fatalf("create genedex client: %v", err)
	}

	apiServer := api.NewAPIServer(client, adminToken, nil, "e2e-test")
	router := apiServer.Router()
	router.Use(apimiddleware.CorrelationID)
	apiServer.MountRoutes()

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	httpServer := httptest.NewServer(router)

	ts := &TestServer{
		t:          t,
		client:     client,
		httpServer: httpServer,
	}

	t.Cleanup(func() {
		ts.Close()
	})

	return ts
}

// seedCatalog writes the shared e2e fixture: two annotated human genes and
// one mouse gene.
func seedCatalog(t *testing.T, dbPath string) {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewDatabase(ctx, "sqlite://"+dbPath)
	if err != nil {
		t.Fatalf("create database: %v", err)
	}
	if err := persistence.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	if _, err := persistence.SeedSpecies(ctx, db); err != nil {
		t.Fatalf("seed species: %v", err)
	}

	session := db.Session(ctx)

	genes := []persistence.GeneModel{
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
		mustCreate(t, session.Create(&g).Error)
	}

	mustCreate(t, session.Create(&persistence.SynonymModel{GeneID: 3630, Synonym: "ILPR"}).Error)
	mustCreate(t, session.Create(&persistence.SynonymModel{GeneID: 3630, Synonym: "IRDN"}).Error)
	mustCreate(t, session.Create(&persistence.SynonymModel{GeneID: 7157, Synonym: "p53"}).Error)

	mustCreate(t, session.Create(&persistence.GeneSummaryModel{
		GeneID: 3630, Summary: "Proinsulin is cleaved into three peptides.", Source: "RefSeq",
	}).Error)

	mustCreate(t, session.Create(&persistence.AnnotationModel{
		GeneID: 3630, Category: "Function", TermID: "GO:0005179", Term: "hormone activity",
	}).Error)
	mustCreate(t, session.Create(&persistence.AnnotationModel{
		GeneID: 3630, Category: "Process", TermID: "GO:0042593", Term: "glucose homeostasis",
	}).Error)

	mustCreate(t, session.Create(&persistence.TraitModel{
		GeneID: 3630, Trait: "Type 1 diabetes", SNPID: "rs689", PValueText: "2e-28",
	}).Error)
	mustCreate(t, session.Create(&persistence.TraitModel{
		GeneID: 3630, Trait: "Fasting glucose", SNPID: "rs7111341", PValueText: "4e-11",
	}).Error)

	pliOld, pliNew := 0.53, 0.68
	loeuf := 0.73
	mustCreate(t, session.Create(&persistence.ConstraintModel{
		GeneID: 7157, Transcript: "ENST00000269305", PLI: &pliOld, Version: "v2.1.1",
	}).Error)
	mustCreate(t, session.Create(&persistence.ConstraintModel{
		GeneID: 7157, Transcript: "ENST00000269305", PLI: &pliNew, LOEUF: &loeuf, Version: "v4.1",
	}).Error)

	mustCreate(t, session.Create(&persistence.ClinicalSummaryModel{
		GeneID: 7157, TotalSubmissions: 4210, TotalAlleles: 2470,
		PathogenicAlleles: 1694, UncertainAlleles: 520, ConflictingAlleles: 77,
		MIMNumber: "191170",
	}).Error)
	mustCreate(t, session.Create(&persistence.ClinicalVariantModel{
		AlleleID: 12351, GeneID: 7157, Name: "NM_000546.6(TP53):c.743G>A (p.Arg248Gln)",
		VariantType: "single nucleotide variant", Significance: "Pathogenic",
		ReviewStatus: "criteria provided, multiple submitters",
		Phenotypes:   "Li-Fraumeni syndrome", Chromosome: "17", Start: 7674220,
		RsID: "rs11540652",
	}).Error)

	mustCreate(t, session.Exec("UPDATE species SET gene_count = 2 WHERE tax_id = 9606").Error)
	mustCreate(t, session.Exec("UPDATE species SET gene_count = 1 WHERE tax_id = 10090").Error)

	if err := db.Close(); err != nil {
		t.Fatalf("close seed database: %v", err)
	}
}

func mustCreate(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("seed row: %v", err)
	}
}

// URL returns the base URL of the test server.
func (ts *TestServer) URL() string {
	return ts.httpServer.URL
}

// Close shuts down the test server.
func (ts *TestServer) Close() {
	ts.httpServer.Close()
	_ = ts.client.Close()
}

// GET performs a GET request and returns the response.
func (ts *TestServer) GET(path string) *http.Response {
	ts.t.Helper()
	resp, err := http.Get(ts.URL() + path)
	if err != nil {
		ts.t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

// POST performs a POST request with the given admin token header.
func (ts *TestServer) POST(path, token string) *http.Response {
	ts.t.Helper()
	req, err := http.NewRequest(http.MethodPost, ts.URL()+path, nil)
	if err != nil {
		ts.t.Fatalf("create POST request: %v", err)
	}
	if token != "" {
		req.Header.Set(apimiddleware.AdminTokenHeader, token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		ts.t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

// DecodeJSON decodes the response body as JSON into v.
func (ts *TestServer) DecodeJSON(resp *http.Response, v any) {
	ts.t.Helper()
	defer func() {
		_ = resp.Body.Close()
	}()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		ts.t.Fatalf("decode response: %v", err)
	}
}

// ReadBody reads and returns the response body as a string.
func (ts *TestServer) ReadBody(resp *http.Response) string {
	ts.t.Helper()
	defer func() {
		_ = resp.Body.Close()
	}()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ts.t.Fatalf("read body: %v", err)
	}
	return string(body)
}

// listDocument mirrors a JSON:API list response with loosely typed
// attributes, enough for cross-endpoint assertions.
type listDocument struct {
	Data []struct {
		Type       string         `json:"type"`
		ID         string         `json:"id"`
		Attributes map[string]any `json:"attributes"`
	} `json:"data"`
	Meta map[string]any `json:"meta"`
}
