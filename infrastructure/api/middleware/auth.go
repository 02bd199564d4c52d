package middleware

import (
	"net/http"
)

// AdminTokenHeader carries the shared admin token on mutating requests.
const AdminTokenHeader = "X-Admin-Token"

// AuthConfig holds admin authentication configuration.
type AuthConfig struct {
	token   string
	enabled bool
}

// NewAuthConfig creates an AuthConfig from a shared admin token. An empty
// token leaves authentication disabled; callers should not mount protected
// routes in that case, because WriteProtect rejects every mutating request
// when no token is configured.
func NewAuthConfig(token string) AuthConfig {
	if token == "" {
		return AuthConfig{enabled: false}
	}
	return AuthConfig{token: token, enabled: true}
}

// Enabled returns true if a token is configured.
func (c AuthConfig) Enabled() bool { return c.enabled }

// WriteProtect returns a middleware that requires the X-Admin-Token header
// on mutating methods. Read methods (GET, HEAD, OPTIONS) pass through.
// Unlike key-optional schemes, this fails closed: with no token configured,
// every mutating request is rejected.
func WriteProtect(config AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			if !config.enabled {
				WriteError(w, r, NewAuthenticationError("admin access is disabled"), nil)
				return
			}

			token := r.Header.Get(AdminTokenHeader)
			if token == "" {
				WriteError(w, r, NewAuthenticationError("X-Admin-Token header is required"), nil)
				return
			}
			if token != config.token {
				WriteError(w, r, NewAuthenticationError("invalid admin token"), nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
