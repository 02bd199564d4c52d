package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/genomelab/genedex"
	"github.com/genomelab/genedex/infrastructure/api/jsonapi"
	"github.com/genomelab/genedex/infrastructure/api/middleware"
)

// SpeciesRouter handles species API endpoints.
type SpeciesRouter struct {
	client     *genedex.Client
	serializer *jsonapi.Serializer
	logger     *slog.Logger
}

// NewSpeciesRouter creates a new SpeciesRouter.
func NewSpeciesRouter(client *genedex.Client) *SpeciesRouter {
	return &SpeciesRouter{
		client:     client,
		serializer: jsonapi.NewSerializer(),
		logger:     client.Logger(),
	}
}

// Routes returns the chi router for species endpoints.
func (r *SpeciesRouter) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", r.List)
	return router
}

// List handles GET /api/v1/species.
//
//	@Summary		List species
//	@Description	Species with at least one gene, ordered by gene count descending
//	@Tags			species
//	@Produce		json
//	@Success		200	{object}	jsonapi.Document
//	@Failure		503	{object}	map[string]string
//	@Router			/species [get]
func (r *SpeciesRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	species, err := r.client.Atlas.Species(ctx)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	doc := jsonapi.NewListResponse(r.serializer.SpeciesResources(species))
	doc.Meta = &jsonapi.Meta{"total_count": len(species)}

	middleware.WriteJSON(w, http.StatusOK, doc)
}
