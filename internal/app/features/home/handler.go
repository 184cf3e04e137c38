package home

import (
	"net/http"

	"github.com/dalemusser/mlhub/internal/app/catalog"
	"github.com/dalemusser/mlhub/internal/app/features/search"
	"github.com/dalemusser/mlhub/internal/app/system/viewdata"
	"github.com/dalemusser/mlhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Catalog *catalog.Catalog
	Log     *zap.Logger
}

func NewHandler(cat *catalog.Catalog, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: cat,
		Log:     logger,
	}
}

// PopularSearches are offered under the hero search box. Each runs a
// search with the default filters.
var PopularSearches = []string{
	"Neural Networks",
	"Linear Regression",
	"Deep Learning",
	"K-Means Clustering",
	"TensorFlow Tutorial",
}

type popularSearch struct {
	Query string
	Href  string
}

type categoryCard struct {
	models.Category
	Href string
}

type pageVM struct {
	viewdata.BaseVM
	Categories    []categoryCard
	Popular       []popularSearch
	ResourceTotal int
}

func (h *Handler) buildPage(r *http.Request) pageVM {
	cats := h.Catalog.Categories()
	cards := make([]categoryCard, 0, len(cats))
	total := 0
	for _, c := range cats {
		cards = append(cards, categoryCard{Category: c, Href: "/categories/" + c.ID})
		total += c.ResourceCount
	}
	popular := make([]popularSearch, 0, len(PopularSearches))
	for _, q := range PopularSearches {
		popular = append(popular, popularSearch{
			Query: q,
			Href:  search.URL(q, models.DefaultFilterState(), search.EntryHero),
		})
	}
	return pageVM{
		BaseVM:        viewdata.NewBaseVM(r, "Machine Learning Resources"),
		Categories:    cards,
		Popular:       popular,
		ResourceTotal: total,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "home", h.buildPage(r))
}
