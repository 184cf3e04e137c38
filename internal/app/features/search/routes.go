// internal/app/features/search/routes.go
package search

import "github.com/go-chi/chi/v5"

// Routes serves the results page; mounted under /search.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeSearch)
	return r
}

// APIRoutes serves the JSON API; mounted under /api/search.
func APIRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeAPI)
	return r
}
