// internal/app/features/about/handler.go
package about

import (
	"net/http"

	"github.com/dalemusser/mlhub/internal/app/catalog"
	"github.com/dalemusser/mlhub/internal/app/system/viewdata"
	"github.com/dalemusser/mlhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

type kindStat struct {
	Label string
	Count int
}

type pageData struct {
	viewdata.BaseVM
	Records    int
	Categories int
	Kinds      []kindStat
}

type Handler struct {
	Catalog *catalog.Catalog
	Log     *zap.Logger
}

func NewHandler(cat *catalog.Catalog, logger *zap.Logger) *Handler {
	return &Handler{Catalog: cat, Log: logger}
}

func (h *Handler) buildPage(r *http.Request) pageData {
	counts := make(map[string]int, len(models.ResourceKinds))
	for _, rec := range h.Catalog.Records() {
		counts[rec.Kind]++
	}
	kinds := make([]kindStat, 0, len(models.ResourceKinds))
	for _, k := range models.ResourceKinds {
		kinds = append(kinds, kindStat{Label: models.TypeLabelForKind(k), Count: counts[k]})
	}
	return pageData{
		BaseVM:     viewdata.NewBaseVM(r, "About"),
		Records:    h.Catalog.Len(),
		Categories: len(h.Catalog.Categories()),
		Kinds:      kinds,
	}
}

func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "about", h.buildPage(r))
}
