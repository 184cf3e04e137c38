// internal/app/features/pwa/sw.go
package pwa

import (
	_ "embed"
	"net/http"
)

//go:embed static/service-worker.js
var serviceWorkerJS []byte

// ServeServiceWorker serves /service-worker.js. The file must be served from
// the root path so the worker can control the entire origin.
func (h *Handler) ServeServiceWorker(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Service-Worker-Allowed", "/")
	_, _ = w.Write(serviceWorkerJS)
}
