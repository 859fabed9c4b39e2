package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pingstack/pingstack-go/internal/middleware"
)

// NewRouter composes the full HTTP surface: open routes, the JWT-gated group,
// and the static frontend. Keeping composition here lets tests exercise the
// exact routing the server runs.
func NewRouter(jwtSecret string, authHandler *AuthHandler, frontend http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)

	r.Get("/api/health", HandleHealth)

	r.Post("/api/auth/login", authHandler.HandleLogin)
	r.Post("/api/auth/register", authHandler.HandleRegister)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(jwtSecret))
		r.Get("/api/auth/me", authHandler.HandleMe)
		r.Get("/api/ping", HandlePing)
	})

	// Unknown API paths get a JSON 404; everything else falls through to the
	// embedded frontend when one is mounted.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if frontend == nil || strings.HasPrefix(req.URL.Path, "/api/") {
			writeJSON(w, http.StatusNotFound, errorResponse("route not found"))
			return
		}
		frontend.ServeHTTP(w, req)
	})

	return r
}
