package v1

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/genomelab/genedex"
	"github.com/genomelab/genedex/domain/layout"
	"github.com/genomelab/genedex/infrastructure/api/jsonapi"
	"github.com/genomelab/genedex/infrastructure/api/middleware"
	"github.com/genomelab/genedex/infrastructure/api/v1/dto"
)

// DefaultTaxID is the species used when a request names none (human).
const DefaultTaxID int64 = 9606

// ChromosomesRouter handles chromosome atlas API endpoints.
type ChromosomesRouter struct {
	client     *genedex.Client
	serializer *jsonapi.Serializer
	logger     *slog.Logger
}

// NewChromosomesRouter creates a new ChromosomesRouter.
func NewChromosomesRouter(client *genedex.Client) *ChromosomesRouter {
	return &ChromosomesRouter{
		client:     client,
		serializer: jsonapi.NewSerializer(),
		logger:     client.Logger(),
	}
}

// Routes returns the chi router for chromosome endpoints.
func (r *ChromosomesRouter) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", r.List)
	router.Get("/{chromosome}", r.View)
	router.Get("/{chromosome}/region", r.Region)
	return router
}

// List handles GET /api/v1/chromosomes.
//
//	@Summary		List chromosomes
//	@Description	Chromosome inventory with gene counts in karyotype order
//	@Tags			chromosomes
//	@Produce		json
//	@Param			species	query		int	false	"Taxonomy ID (default 9606)"
//	@Success		200		{object}	jsonapi.Document
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/chromosomes [get]
func (r *ChromosomesRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	taxID, err := parseSpecies(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	counts, err := r.client.Atlas.Chromosomes(ctx, taxID)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	doc := jsonapi.NewListResponse(r.serializer.ChromosomeResources(counts))
	doc.Meta = &jsonapi.Meta{
		"species":     taxID,
		"total_count": len(counts),
	}

	middleware.WriteJSON(w, http.StatusOK, doc)
}

// View handles GET /api/v1/chromosomes/{chromosome}.
//
//	@Summary		Chromosome view
//	@Description	Band layout with capped visible placements plus the full gene list
//	@Tags			chromosomes
//	@Produce		json
//	@Param			chromosome	path		string	true	"Chromosome label"
//	@Param			species		query		int		false	"Taxonomy ID (default 9606)"
//	@Param			highlight	query		string	false	"Comma-separated gene IDs to highlight"
//	@Param			zoom		query		number	false	"Zoom factor scaling the visible cap"
//	@Success		200			{object}	dto.ChromosomeViewResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		404			{object}	map[string]string
//	@Router			/chromosomes/{chromosome} [get]
func (r *ChromosomesRouter) View(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	chromosome := chi.URLParam(req, "chromosome")

	taxID, err := parseSpecies(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	highlighted, err := parseHighlight(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	zoom, err := parseZoom(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	view, err := r.client.Atlas.ChromosomeView(ctx, taxID, chromosome, highlighted, zoom)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	response := dto.ChromosomeViewResponse{
		Data: dto.ChromosomeViewData{
			Type:       "chromosome-view",
			ID:         chromosome,
			Attributes: layoutToDTO(chromosome, view.Layout()),
		},
		Genes: r.serializer.GeneResources(view.Genes()),
		Meta:  &jsonapi.Meta{"species": taxID},
	}

	middleware.WriteJSON(w, http.StatusOK, response)
}

// Region handles GET /api/v1/chromosomes/{chromosome}/region.
//
//	@Summary		Band region genes
//	@Description	Genes whose map location starts with the chromosome and band prefix
//	@Tags			chromosomes
//	@Produce		json
//	@Param			chromosome	path		string	true	"Chromosome label"
//	@Param			band		query		string	true	"Band prefix, e.g. p15"
//	@Param			species		query		int		false	"Taxonomy ID (default 9606)"
//	@Success		200			{object}	dto.RegionResponse
//	@Failure		400			{object}	map[string]string
//	@Router			/chromosomes/{chromosome}/region [get]
func (r *ChromosomesRouter) Region(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	chromosome := chi.URLParam(req, "chromosome")
	band := req.URL.Query().Get("band")

	taxID, err := parseSpecies(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	genes, err := r.client.Atlas.Region(ctx, taxID, chromosome, band)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	response := dto.RegionResponse{
		Data: r.serializer.GeneResources(genes),
		Meta: &jsonapi.Meta{
			"species":     taxID,
			"chromosome":  chromosome,
			"band":        band,
			"total_count": len(genes),
		},
	}

	middleware.WriteJSON(w, http.StatusOK, response)
}

func parseSpecies(req *http.Request) (int64, error) {
	speciesStr := req.URL.Query().Get("species")
	if speciesStr == "" {
		return DefaultTaxID, nil
	}
	taxID, err := strconv.ParseInt(speciesStr, 10, 64)
	if err != nil {
		return 0, middleware.NewAPIError(
			http.StatusBadRequest, fmt.Sprintf("invalid species %q", speciesStr), err)
	}
	return taxID, nil
}

func parseHighlight(req *http.Request) ([]int64, error) {
	highlightStr := req.URL.Query().Get("highlight")
	if highlightStr == "" {
		return nil, nil
	}
	parts := strings.Split(highlightStr, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, middleware.NewAPIError(
				http.StatusBadRequest, fmt.Sprintf("invalid highlight id %q", part), err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseZoom(req *http.Request) (float64, error) {
	zoomStr := req.URL.Query().Get("zoom")
	if zoomStr == "" {
		return 1.0, nil
	}
	zoom, err := strconv.ParseFloat(zoomStr, 64)
	if err != nil {
		return 0, middleware.NewAPIError(
			http.StatusBadRequest, fmt.Sprintf("invalid zoom %q", zoomStr), err)
	}
	return zoom, nil
}

func layoutToDTO(chromosome string, rec layout.Record) dto.LayoutAttributes {
	bands := rec.Bands()
	bandData := make([]dto.BandSchema, len(bands))
	for i, band := range bands {
		placements := band.Placements()
		placementData := make([]dto.PlacementSchema, len(placements))
		for j, p := range placements {
			placementData[j] = dto.PlacementSchema{
				GeneID:      p.Gene().ID(),
				Symbol:      p.Gene().Symbol(),
				Position:    p.Position(),
				Highlighted: p.Highlighted(),
			}
		}
		bandData[i] = dto.BandSchema{
			Label:      band.Label(),
			Placements: placementData,
		}
	}

	return dto.LayoutAttributes{
		Chromosome:   chromosome,
		Zoom:         rec.Zoom(),
		TotalGenes:   rec.Total(),
		VisibleCount: rec.VisibleCount(),
		Bands:        bandData,
	}
}
