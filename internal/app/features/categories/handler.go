// internal/app/features/categories/handler.go
package categories

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/mlhub/internal/app/catalog"
	uierrors "github.com/dalemusser/mlhub/internal/app/features/errors"
	"github.com/dalemusser/mlhub/internal/app/features/search"
	"github.com/dalemusser/mlhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the category list and the category quick filter.
type Handler struct {
	Catalog *catalog.Catalog
	Log     *zap.Logger
}

func NewHandler(cat *catalog.Catalog, logger *zap.Logger) *Handler {
	return &Handler{Catalog: cat, Log: logger}
}

// ServeList handles GET /api/categories.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(struct {
		Categories []models.Category `json:"categories"`
	}{h.Catalog.Categories()}); err != nil {
		h.Log.Warn("encode categories response failed", zap.Error(err))
	}
}

// ServeQuickFilter handles GET /categories/{categoryID}: a search with an
// empty query restricted to that category.
func (h *Handler) ServeQuickFilter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "categoryID")
	cat, ok := h.Catalog.CategoryByID(id)
	if !ok {
		h.Log.Debug("unknown category", zap.String("category_id", id))
		uierrors.RenderNotFound(w, r, "That category does not exist.", "/")
		return
	}
	target := search.URL("", models.FilterState{Category: cat.Name}, search.EntryCategory)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
