package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mark3labs/mcp-go/server"

	"github.com/genomelab/genedex"
	apimiddleware "github.com/genomelab/genedex/infrastructure/api/middleware"
	v1 "github.com/genomelab/genedex/infrastructure/api/v1"
	mcpinternal "github.com/genomelab/genedex/internal/mcp"
)

// APIServer provides an HTTP API backed by a genedex Client.
type APIServer struct {
	client       *genedex.Client
	adminToken   string
	corsOrigins  []string
	version      string
	server       *Server
	router       chi.Router
	routerCalled bool
	logger       *slog.Logger
}

// NewAPIServer creates a new APIServer wired to the given genedex Client.
// adminToken guards the /api/v1/admin subtree; when empty, admin routes are
// not mounted at all. corsOrigins lists allowed browser origins (empty means
// any origin, the whole surface is read-only). version is reported by the
// MCP get_version tool.
func NewAPIServer(client *genedex.Client, adminToken string, corsOrigins []string, version string) *APIServer {
	return &APIServer{
		client:      client,
		adminToken:  adminToken,
		corsOrigins: corsOrigins,
		version:     version,
		logger:      client.Logger(),
	}
}

// Router returns the chi router for customization before starting.
// Call this first, add custom middleware with router.Use(), then call MountRoutes().
// If not called, ListenAndServe creates a default router with all standard routes.
func (a *APIServer) Router() chi.Router {
	if a.router != nil {
		return a.router
	}

	a.router = chi.NewRouter()
	a.routerCalled = true
	return a.router
}

// MountRoutes wires up all v1 API routes on the router.
// Call this after adding any custom middleware via Router().Use().
func (a *APIServer) MountRoutes() {
	if a.router == nil {
		a.Router()
	}
	a.mountRoutes(a.router)
}

// mountRoutes wires up all v1 API routes on the given router.
func (a *APIServer) mountRoutes(router chi.Router) {
	c := a.client

	searchRouter := v1.NewSearchRouter(c)
	genesRouter := v1.NewGenesRouter(c)
	speciesRouter := v1.NewSpeciesRouter(c)
	chromosomesRouter := v1.NewChromosomesRouter(c)

	corsHandler := cors.Handler(a.corsOptions())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(corsHandler)
		r.Use(chimiddleware.Timeout(60 * time.Second))

		// Open routes. The whole catalog surface is read-only.
		r.Mount("/search", searchRouter.Routes())
		r.Mount("/genes", genesRouter.Routes())
		r.Mount("/species", speciesRouter.Routes())
		r.Mount("/chromosomes", chromosomesRouter.Routes())

		// Admin routes exist only when a token is configured; the middleware
		// additionally fails closed on every mutating request.
		if a.adminToken != "" {
			adminRouter := v1.NewAdminRouter(c)
			r.Group(func(r chi.Router) {
				r.Use(apimiddleware.WriteProtect(apimiddleware.NewAuthConfig(a.adminToken)))
				r.Mount("/admin", adminRouter.Routes())
			})
		}
	})

	// MCP (Model Context Protocol) endpoint, mounted without the timeout
	// middleware. MCP uses streaming responses and manages its own session
	// state via response headers, which is incompatible with chi's Timeout
	// middleware wrapping the ResponseWriter.
	mcpSrv := mcpinternal.NewServer(c.Search, c.Genes, c.Atlas, a.version, a.logger)
	httpHandler := server.NewStreamableHTTPServer(mcpSrv.MCPServer())
	router.Mount("/mcp", corsHandler(httpHandler))
}

func (a *APIServer) corsOptions() cors.Options {
	origins := a.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Admin-Token", "X-Correlation-ID"},
		ExposedHeaders: []string{"X-Correlation-ID"},
		MaxAge:         300,
	}
}

// DocsRouter returns a router for Swagger UI and OpenAPI spec.
func (a *APIServer) DocsRouter(specURL string) *DocsRouter {
	return NewDocsRouter(specURL)
}

// ListenAndServe starts the HTTP server on the given address.
func (a *APIServer) ListenAndServe(addr string) error {
	server := NewServer(addr, a.logger)
	a.server = &server

	if a.routerCalled && a.router != nil {
		server.Router().Mount("/", a.router)
	} else {
		a.mountRoutes(server.Router())
	}

	return server.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

// Handler returns the router as an http.Handler for use with custom servers.
func (a *APIServer) Handler() http.Handler {
	if a.router == nil {
		a.Router()
		a.MountRoutes()
	}
	return a.router
}
