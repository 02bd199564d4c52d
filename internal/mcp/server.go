// Package mcp provides Model Context Protocol server functionality.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/genomelab/genedex/application/service"
	"github.com/genomelab/genedex/domain/gene"
	"github.com/genomelab/genedex/domain/search"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Searcher provides ranked gene search for MCP tools.
type Searcher interface {
	Query(ctx context.Context, term string, opts ...service.QueryOption) ([]search.Item, error)
}

// DetailLookup provides aggregated gene records for MCP tools.
type DetailLookup interface {
	Detail(ctx context.Context, geneID int64) (gene.Detail, error)
}

// SpeciesLister provides the populated species catalog for MCP tools.
type SpeciesLister interface {
	Species(ctx context.Context) ([]gene.Species, error)
}

// Server wraps the MCP server with genedex-specific tools.
type Server struct {
	mcpServer *server.MCPServer
	searcher  Searcher
	details   DetailLookup
	species   SpeciesLister
	version   string
	logger    *slog.Logger
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(searcher Searcher, details DetailLookup, species SpeciesLister, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		searcher: searcher,
		details:  details,
		species:  species,
		version:  version,
		logger:   logger,
	}

	// Create MCP server with server info
	mcpServer := server.NewMCPServer(
		"genedex",
		version,
		server.WithToolCapabilities(true),
	)

	// Register tools
	s.registerTools(mcpServer)

	s.mcpServer = mcpServer
	return s
}

// registerTools registers all genedex tools with the MCP server.
func (s *Server) registerTools(mcpServer *server.MCPServer) {
	searchTool := mcp.NewTool("gene_search",
		mcp.WithDescription("Search genes by symbol, name, synonym, GO term, or GWAS trait"),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The search term"),
		),
		mcp.WithNumber("species",
			mcp.Description("Filter by taxonomy id (9606 = human)"),
		),
		mcp.WithString("chromosome",
			mcp.Description("Filter by chromosome label (1-22, X, Y, MT)"),
		),
		mcp.WithString("constraint",
			mcp.Description("Filter by constraint tier: essential, constrained, tolerant"),
		),
		mcp.WithString("clinical",
			mcp.Description("Filter by clinical evidence: pathogenic, gwas, disease"),
		),
		mcp.WithString("gene_type",
			mcp.Description("Filter by gene type: protein-coding, pseudo, ncRNA, other"),
		),
		mcp.WithString("go_category",
			mcp.Description("Filter by GO coverage: function, process, component, any"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of results to return (default: 10)"),
		),
	)
	mcpServer.AddTool(searchTool, s.handleSearch)

	detailTool := mcp.NewTool("gene_detail",
		mcp.WithDescription("Get the aggregated annotation record for a gene by its numeric id"),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("The numeric gene id"),
		),
	)
	mcpServer.AddTool(detailTool, s.handleDetail)

	speciesTool := mcp.NewTool("list_species",
		mcp.WithDescription("List species with genes in the catalog"),
	)
	mcpServer.AddTool(speciesTool, s.handleListSpecies)

	versionTool := mcp.NewTool("get_version",
		mcp.WithDescription("Get the genedex server version"),
	)
	mcpServer.AddTool(versionTool, s.handleVersion)
}

// handleSearch handles the gene_search tool invocation.
func (s *Server) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil
	}

	limit := request.GetInt("limit", 10)
	opts := []service.QueryOption{service.WithLimit(limit)}

	if taxID := request.GetInt("species", 0); taxID > 0 {
		opts = append(opts, service.WithSpecies(int64(taxID)))
	}
	if chromosome := request.GetString("chromosome", ""); chromosome != "" {
		opts = append(opts, service.WithChromosome(chromosome))
	}
	if v := request.GetString("constraint", ""); v != "" {
		tier, err := search.ParseConstraintTier(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		opts = append(opts, service.WithConstraintTier(tier))
	}
	if v := request.GetString("clinical", ""); v != "" {
		bucket, err := search.ParseClinicalBucket(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		opts = append(opts, service.WithClinicalBucket(bucket))
	}
	if v := request.GetString("gene_type", ""); v != "" {
		class, err := search.ParseGeneTypeClass(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		opts = append(opts, service.WithGeneType(class))
	}
	if v := request.GetString("go_category", ""); v != "" {
		filter, err := search.ParseGOFilter(v)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		opts = append(opts, service.WithGOFilter(filter))
	}

	items, err := s.searcher.Query(ctx, term, opts...)
	if err != nil {
		if errors.Is(err, service.ErrInvalidArgument) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		s.logger.Error("gene search failed", slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	type searchResult struct {
		ID          int64   `json:"id"`
		Symbol      string  `json:"symbol"`
		Name        string  `json:"name"`
		Species     string  `json:"species"`
		Chromosome  string  `json:"chromosome,omitempty"`
		MapLocation string  `json:"map_location,omitempty"`
		GeneType    string  `json:"gene_type,omitempty"`
		Matched     string  `json:"matched"`
		Source      string  `json:"source"`
		Score       float64 `json:"score"`
	}

	results := make([]searchResult, len(items))
	for i, item := range items {
		g := item.Gene()
		results[i] = searchResult{
			ID:          g.ID(),
			Symbol:      g.Symbol(),
			Name:        g.Name(),
			Species:     item.SpeciesName(),
			Chromosome:  g.Chromosome(),
			MapLocation: g.MapLocation(),
			GeneType:    g.GeneType(),
			Matched:     item.Matched(),
			Source:      string(item.Source()),
			Score:       item.Score(),
		}
	}

	jsonBytes, err := json.Marshal(results)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// handleDetail handles the gene_detail tool invocation.
func (s *Server) handleDetail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}
	geneID := int64(id)

	detail, err := s.details.Detail(ctx, geneID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("gene %d not found", geneID)), nil
		}
		if errors.Is(err, service.ErrInvalidArgument) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		s.logger.Error("gene detail failed", slog.Int64("gene_id", geneID), slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("failed to get gene: %v", err)), nil
	}

	jsonBytes, err := json.Marshal(detailResultFrom(detail))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// handleListSpecies handles the list_species tool invocation.
func (s *Server) handleListSpecies(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	catalog, err := s.species.Species(ctx)
	if err != nil {
		s.logger.Error("list species failed", slog.Any("error", err))
		return mcp.NewToolResultError(fmt.Sprintf("failed to list species: %v", err)), nil
	}

	if len(catalog) == 0 {
		return mcp.NewToolResultText("no species with genes in the catalog"), nil
	}

	var b strings.Builder
	for _, sp := range catalog {
		fmt.Fprintf(&b, "- %s, tax id %d: %d genes\n", sp.DisplayName(), sp.TaxID(), sp.GeneCount())
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleVersion handles the get_version tool invocation.
func (s *Server) handleVersion(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s.version), nil
}

// detailResult is the gene_detail tool payload.
type detailResult struct {
	ID          int64             `json:"id"`
	Symbol      string            `json:"symbol"`
	Name        string            `json:"name"`
	Species     string            `json:"species"`
	TaxID       int64             `json:"tax_id"`
	Chromosome  string            `json:"chromosome,omitempty"`
	MapLocation string            `json:"map_location,omitempty"`
	GeneType    string            `json:"gene_type,omitempty"`
	Description string            `json:"description,omitempty"`
	Synonyms    []string          `json:"synonyms,omitempty"`
	Summary     *summaryResult    `json:"summary,omitempty"`
	GO          *ontologyResult   `json:"go,omitempty"`
	Traits      *traitsResult     `json:"traits,omitempty"`
	Constraint  *constraintResult `json:"constraint,omitempty"`
	Clinical    *clinicalResult   `json:"clinical,omitempty"`
	Degraded    []string          `json:"degraded,omitempty"`
}

type summaryResult struct {
	Text   string `json:"text"`
	Source string `json:"source,omitempty"`
}

type termResult struct {
	ID   string `json:"id"`
	Term string `json:"term"`
}

type ontologyResult struct {
	Function  []termResult `json:"function,omitempty"`
	Process   []termResult `json:"process,omitempty"`
	Component []termResult `json:"component,omitempty"`
}

type traitResult struct {
	Trait      string `json:"trait"`
	SNPID      string `json:"snp_id,omitempty"`
	PValueText string `json:"p_value,omitempty"`
	PubmedID   string `json:"pubmed_id,omitempty"`
}

type traitsResult struct {
	Total int64         `json:"total"`
	Items []traitResult `json:"items"`
}

type constraintResult struct {
	PLI        *float64 `json:"pli,omitempty"`
	LOEUF      *float64 `json:"loeuf,omitempty"`
	OELof      *float64 `json:"oe_lof,omitempty"`
	OEMis      *float64 `json:"oe_mis,omitempty"`
	MisZ       *float64 `json:"mis_z,omitempty"`
	Transcript string   `json:"transcript,omitempty"`
	Version    string   `json:"version,omitempty"`
}

type variantResult struct {
	Name         string `json:"name"`
	VariantType  string `json:"variant_type,omitempty"`
	Significance string `json:"significance"`
	ReviewStatus string `json:"review_status,omitempty"`
	Phenotypes   string `json:"phenotypes,omitempty"`
	RSID         string `json:"rs_id,omitempty"`
}

type clinicalResult struct {
	TotalSubmissions   int64           `json:"total_submissions"`
	TotalAlleles       int64           `json:"total_alleles"`
	PathogenicAlleles  int64           `json:"pathogenic_alleles"`
	UncertainAlleles   int64           `json:"uncertain_alleles"`
	ConflictingAlleles int64           `json:"conflicting_alleles"`
	MIMNumber          string          `json:"mim_number,omitempty"`
	Variants           []variantResult `json:"variants"`
}

func detailResultFrom(d gene.Detail) detailResult {
	g := d.Gene()
	out := detailResult{
		ID:          g.ID(),
		Symbol:      g.Symbol(),
		Name:        g.Name(),
		Species:     d.Species().DisplayName(),
		TaxID:       g.TaxID(),
		Chromosome:  g.Chromosome(),
		MapLocation: g.MapLocation(),
		GeneType:    g.GeneType(),
		Description: g.Description(),
		Synonyms:    g.Synonyms(),
		Degraded:    d.Degraded(),
	}

	if sum := d.Summary(); sum != nil {
		out.Summary = &summaryResult{Text: sum.Text(), Source: sum.Source()}
	}
	if ont := d.Ontology(); !ont.IsEmpty() {
		out.GO = &ontologyResult{
			Function:  termResults(ont.Function()),
			Process:   termResults(ont.Process()),
			Component: termResults(ont.Component()),
		}
	}
	if traits := d.Traits(); !traits.IsEmpty() {
		items := traits.Items()
		tr := &traitsResult{Total: traits.Total(), Items: make([]traitResult, len(items))}
		for i, t := range items {
			tr.Items[i] = traitResult{
				Trait:      t.Trait(),
				SNPID:      t.SNPID(),
				PValueText: t.PValueText(),
				PubmedID:   t.PubmedID(),
			}
		}
		out.Traits = tr
	}
	if c := d.Constraint(); c != nil {
		out.Constraint = &constraintResult{
			PLI:        optFloat(c.PLI()),
			LOEUF:      optFloat(c.LOEUF()),
			OELof:      optFloat(c.OELof()),
			OEMis:      optFloat(c.OEMis()),
			MisZ:       optFloat(c.MisZ()),
			Transcript: c.Transcript(),
			Version:    c.Version(),
		}
	}
	if rec := d.Clinical(); rec != nil {
		sum := rec.Summary()
		variants := rec.Variants()
		cl := &clinicalResult{
			TotalSubmissions:   sum.TotalSubmissions(),
			TotalAlleles:       sum.TotalAlleles(),
			PathogenicAlleles:  sum.PathogenicAlleles(),
			UncertainAlleles:   sum.UncertainAlleles(),
			ConflictingAlleles: sum.ConflictingAlleles(),
			MIMNumber:          sum.MIMNumber(),
			Variants:           make([]variantResult, len(variants)),
		}
		for i, v := range variants {
			cl.Variants[i] = variantResult{
				Name:         v.Name(),
				VariantType:  v.VariantType(),
				Significance: v.Significance(),
				ReviewStatus: v.ReviewStatus(),
				Phenotypes:   v.Phenotypes(),
				RSID:         v.RSID(),
			}
		}
		out.Clinical = cl
	}

	return out
}

func termResults(annotations []gene.Annotation) []termResult {
	if len(annotations) == 0 {
		return nil
	}
	out := make([]termResult, len(annotations))
	for i, a := range annotations {
		out[i] = termResult{ID: a.TermID(), Term: a.Term()}
	}
	return out
}

func optFloat(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}

// MCPServer returns the underlying MCP server for HTTP mounting and stdio
// serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio runs the MCP server on stdio.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
