package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/genomelab/genedex/infrastructure/api"
	"github.com/genomelab/genedex/infrastructure/api/middleware"
)

func TestAPIServer_ReadEndpointsOpen_AdminProtected(t *testing.T) {
	client := newMCPTestClient(t)
	apiServer := api.NewAPIServer(client, "test-admin-token", nil, "0.0.1")
	router := apiServer.Router()

	apiServer.MountRoutes()

	docsRouter := apiServer.DocsRouter("/docs/openapi.json")
	router.Mount("/docs", docsRouter.Routes())

	handler := router

	t.Run("GET /docs returns 200 without admin token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/docs/", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("GET /api/v1/species returns 200 without admin token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/species", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
		}
	})

	t.Run("GET /api/v1/search returns 200 without admin token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=insulin", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
		}
	})

	t.Run("GET /api/v1/search without q returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/search", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d; body: %s", w.Code, http.StatusBadRequest, w.Body.String())
		}
	})

	t.Run("GET /api/v1/genes/notanumber returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/genes/notanumber", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d; body: %s", w.Code, http.StatusBadRequest, w.Body.String())
		}
	})

	t.Run("GET /api/v1/genes/999 returns 404 on empty catalog", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/genes/999", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d; body: %s", w.Code, http.StatusNotFound, w.Body.String())
		}
	})

	t.Run("POST /api/v1/admin/cache/clear without token returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/cache/clear", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d; body: %s", w.Code, http.StatusUnauthorized, w.Body.String())
		}
	})

	t.Run("POST /api/v1/admin/cache/clear with wrong token returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/cache/clear", nil)
		req.Header.Set(middleware.AdminTokenHeader, "wrong-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d; body: %s", w.Code, http.StatusUnauthorized, w.Body.String())
		}
	})

	t.Run("POST /api/v1/admin/cache/clear with valid token returns 200", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/cache/clear", nil)
		req.Header.Set(middleware.AdminTokenHeader, "test-admin-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d; body: %s", w.Code, http.StatusOK, w.Body.String())
		}
	})
}

func TestAPIServer_AdminRoutesAbsentWithoutToken(t *testing.T) {
	client := newMCPTestClient(t)
	apiServer := api.NewAPIServer(client, "", nil, "0.0.1")
	handler := apiServer.Handler()

	// No token configured: the admin subtree is not mounted at all, so even
	// a request carrying a token gets 404 rather than 401.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/cache/clear", nil)
	req.Header.Set(middleware.AdminTokenHeader, "any-token")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d; body: %s", w.Code, http.StatusNotFound, w.Body.String())
	}
}

func TestAPIServer_CORSPreflight(t *testing.T) {
	client := newMCPTestClient(t)
	apiServer := api.NewAPIServer(client, "", nil, "0.0.1")
	handler := apiServer.Handler()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/search", nil)
	req.Header.Set("Origin", "https://genome.example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
