package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/genomelab/genedex"
	"github.com/genomelab/genedex/infrastructure/api/middleware"
)

// AdminRouter handles administrative API endpoints.
type AdminRouter struct {
	client *genedex.Client
	logger *slog.Logger
}

// NewAdminRouter creates a new AdminRouter.
func NewAdminRouter(client *genedex.Client) *AdminRouter {
	return &AdminRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for admin endpoints.
func (r *AdminRouter) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/cache/clear", r.ClearCache)
	return router
}

// ClearCache handles POST /api/v1/admin/cache/clear.
//
//	@Summary		Clear atlas cache
//	@Description	Drops cached chromosome gene lists so the next view reloads from the store
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		401	{object}	map[string]string
//	@Security		AdminTokenAuth
//	@Router			/admin/cache/clear [post]
func (r *AdminRouter) ClearCache(w http.ResponseWriter, req *http.Request) {
	r.client.Atlas.InvalidateCache()
	r.logger.Info("atlas cache cleared", "remote_addr", req.RemoteAddr)

	middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
