// Package v1 provides the v1 API routes.
package v1

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/genomelab/genedex"
	"github.com/genomelab/genedex/application/service"
	"github.com/genomelab/genedex/domain/search"
	"github.com/genomelab/genedex/infrastructure/api/middleware"
	"github.com/genomelab/genedex/infrastructure/api/v1/dto"
)

// SearchRouter handles search API endpoints.
type SearchRouter struct {
	client *genedex.Client
	logger *slog.Logger
}

// NewSearchRouter creates a new SearchRouter.
func NewSearchRouter(client *genedex.Client) *SearchRouter {
	return &SearchRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for search endpoints.
func (r *SearchRouter) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", r.Search)
	return router
}

// Search handles GET /api/v1/search.
//
//	@Summary		Search genes
//	@Description	Full-text gene search with optional filters
//	@Tags			search
//	@Produce		json
//	@Param			q			query		string	true	"Search term"
//	@Param			species		query		int		false	"Taxonomy ID filter"
//	@Param			chromosome	query		string	false	"Chromosome filter"
//	@Param			constraint	query		string	false	"Constraint tier: essential, constrained or tolerant"
//	@Param			clinical	query		string	false	"Clinical bucket: pathogenic, gwas or disease"
//	@Param			gene_type	query		string	false	"Gene type class: protein-coding, pseudo, ncrna or other"
//	@Param			go_category	query		string	false	"GO category: function, process, component or any"
//	@Param			page		query		int		false	"Page number (default 1)"
//	@Param			page_size	query		int		false	"Page size (default 20, max 100)"
//	@Success		200			{object}	dto.SearchResponse
//	@Failure		400			{object}	map[string]string
//	@Failure		503			{object}	map[string]string
//	@Router			/search [get]
func (r *SearchRouter) Search(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	term := strings.TrimSpace(req.URL.Query().Get("q"))

	opts, err := buildQueryOptions(req)
	if err != nil {
		middleware.WriteError(w, req, middleware.NewAPIError(http.StatusBadRequest, err.Error(), err), r.logger)
		return
	}

	items, err := r.client.Search.Query(ctx, term, opts...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	pagination := ParsePagination(req)
	total := int64(len(items))
	lo, hi := pagination.Bounds(len(items))

	meta := PaginationMeta(pagination, total)
	(*meta)["query"] = term

	response := dto.SearchResponse{
		Data:  searchItemsToDTO(items[lo:hi]),
		Meta:  meta,
		Links: PaginationLinks(req, pagination, total),
	}

	middleware.WriteJSON(w, http.StatusOK, response)
}

// buildQueryOptions translates query parameters into search options.
// Unknown filter values are reported, not ignored.
func buildQueryOptions(req *http.Request) ([]service.QueryOption, error) {
	q := req.URL.Query()

	var opts []service.QueryOption

	if speciesStr := q.Get("species"); speciesStr != "" {
		taxID, err := strconv.ParseInt(speciesStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid species %q", speciesStr)
		}
		opts = append(opts, service.WithSpecies(taxID))
	}

	if chromosome := q.Get("chromosome"); chromosome != "" {
		opts = append(opts, service.WithChromosome(chromosome))
	}

	if tierStr := q.Get("constraint"); tierStr != "" {
		tier, err := search.ParseConstraintTier(tierStr)
		if err != nil {
			return nil, err
		}
		opts = append(opts, service.WithConstraintTier(tier))
	}

	if bucketStr := q.Get("clinical"); bucketStr != "" {
		bucket, err := search.ParseClinicalBucket(bucketStr)
		if err != nil {
			return nil, err
		}
		opts = append(opts, service.WithClinicalBucket(bucket))
	}

	if classStr := q.Get("gene_type"); classStr != "" {
		class, err := search.ParseGeneTypeClass(classStr)
		if err != nil {
			return nil, err
		}
		opts = append(opts, service.WithGeneType(class))
	}

	if filterStr := q.Get("go_category"); filterStr != "" {
		filter, err := search.ParseGOFilter(filterStr)
		if err != nil {
			return nil, err
		}
		opts = append(opts, service.WithGOFilter(filter))
	}

	return opts, nil
}

func searchItemsToDTO(items []search.Item) []dto.SearchItemData {
	data := make([]dto.SearchItemData, len(items))
	for i, item := range items {
		data[i] = searchItemToDTO(item)
	}
	return data
}

func searchItemToDTO(item search.Item) dto.SearchItemData {
	g := item.Gene()

	attrs := dto.SearchItemAttributes{
		Symbol:            g.Symbol(),
		Name:              g.Name(),
		Species:           item.SpeciesName(),
		TaxID:             g.TaxID(),
		Chromosome:        g.Chromosome(),
		MapLocation:       g.MapLocation(),
		GeneType:          g.GeneType(),
		Matched:           item.Matched(),
		Source:            string(item.Source()),
		Score:             item.Score(),
		TraitCount:        item.TraitCount(),
		HasSummary:        item.HasSummary(),
		HasGWAS:           item.HasGWAS(),
		PathogenicAlleles: item.PathogenicAlleles(),
	}
	if pli, ok := item.MaxPLI(); ok {
		attrs.MaxPLI = &pli
	}
	if loeuf, ok := item.MinLOEUF(); ok {
		attrs.MinLOEUF = &loeuf
	}

	return dto.SearchItemData{
		Type:       "gene",
		ID:         strconv.FormatInt(g.ID(), 10),
		Attributes: attrs,
	}
}
