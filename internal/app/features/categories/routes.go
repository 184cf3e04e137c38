// internal/app/features/categories/routes.go
package categories

import "github.com/go-chi/chi/v5"

// Routes serves the quick filter; mounted under /categories.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{categoryID}", h.ServeQuickFilter)
	return r
}

// APIRoutes serves the JSON list; mounted under /api/categories.
func APIRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	return r
}
