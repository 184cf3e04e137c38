// internal/app/features/pwa/routes.go
package pwa

import "github.com/go-chi/chi/v5"

// APIRoutes serves the host-event intake and history; mounted under /api/pwa.
// The manifest and service worker are registered at the root by bootstrap.
func APIRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/events", h.ServeEvent)
	r.Get("/events", h.ServeHistory)
	return r
}
