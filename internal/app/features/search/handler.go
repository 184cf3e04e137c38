// internal/app/features/search/handler.go
package search

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/mlhub/internal/app/catalog"
	"github.com/dalemusser/mlhub/internal/app/system/metrics"
	"github.com/dalemusser/mlhub/internal/app/system/viewdata"
	"github.com/dalemusser/mlhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// resultsTarget is the element id the in-page controls swap via HTMX.
const resultsTarget = "search-results"

const publishedLayout = "Jan 2, 2006"

// Handler serves the results page and the search API.
type Handler struct {
	Catalog *catalog.Catalog
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func NewHandler(cat *catalog.Catalog, m *metrics.Metrics, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: cat,
		Metrics: m,
		Log:     logger,
	}
}

// run executes one search. Every entry point goes through here.
func (h *Handler) run(req Request) []models.Resource {
	results := h.Catalog.Search(req.Query, req.Filters)
	h.Metrics.ObserveSearch(req.Entry, req.Filters.SortBy, len(results))
	h.Log.Debug("search",
		zap.String("entry", req.Entry),
		zap.String("query", req.Query),
		zap.String("category", req.Filters.Category),
		zap.String("type", req.Filters.Type),
		zap.String("sort", string(req.Filters.SortBy)),
		zap.Int("results", len(results)))
	return results
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /search – results page                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// resultVM is one result card with display-ready metadata.
type resultVM struct {
	models.Resource
	TypeLabel    string
	Published    string
	RatingText   string
	DownloadName string // documents only
}

type pageVM struct {
	viewdata.BaseVM
	Query    string
	Filters  models.FilterState
	Options  catalog.FilterOptions
	Category *models.Category // set when the category filter names a known category
	Results  []resultVM
	Total    int
	ClearURL string
}

// DownloadFilename is the file name offered when a document is downloaded:
// the title lower-cased with every rune other than an ASCII letter or digit
// replaced by "_", plus ".pdf".
func DownloadFilename(title string) string {
	var b strings.Builder
	b.Grow(len(title) + len(".pdf"))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	b.WriteString(".pdf")
	return b.String()
}

func newResultVM(r models.Resource) resultVM {
	vm := resultVM{Resource: r, TypeLabel: models.TypeLabelForKind(r.Kind)}
	if r.Kind == models.ResourceKindDocument {
		vm.DownloadName = DownloadFilename(r.Title)
	}
	if r.PublishedAt != nil {
		vm.Published = r.PublishedAt.Format(publishedLayout)
	}
	if r.Rating != nil {
		vm.RatingText = strconv.FormatFloat(*r.Rating, 'f', 1, 64)
	}
	return vm
}

func (h *Handler) buildPage(r *http.Request, req Request, results []models.Resource) pageVM {
	title := "Search"
	if req.Query != "" {
		title = "Search: " + req.Query
	}
	cards := make([]resultVM, 0, len(results))
	for _, res := range results {
		cards = append(cards, newResultVM(res))
	}
	vm := pageVM{
		BaseVM:   viewdata.NewBaseVM(r, title),
		Query:    req.Query,
		Filters:  req.Filters,
		Options:  h.Catalog.Filters(),
		Results:  cards,
		Total:    len(results),
		ClearURL: ClearFiltersURL(req.Query),
	}
	if req.Filters.Category != models.AllCategories {
		if c, ok := h.Catalog.CategoryByName(req.Filters.Category); ok {
			vm.Category = &c
		}
	}
	return vm
}

// ServeSearch renders the results page. An HTMX request targeting the
// results container gets only the results snippet.
func (h *Handler) ServeSearch(w http.ResponseWriter, r *http.Request) {
	req := ParseRequest(r)
	data := h.buildPage(r, req, h.run(req))

	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == resultsTarget {
		templates.RenderSnippet(w, "search_results", data)
		return
	}
	templates.Render(w, r, "search", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /api/search – JSON                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

type apiResponse struct {
	Query   string             `json:"query"`
	Filters models.FilterState `json:"filters"`
	Total   int                `json:"total"`
	Results []models.Resource  `json:"results"`
}

// ServeAPI returns the search result as JSON.
//
//	{ "query":"tensorflow", "filters":{...}, "total":1, "results":[...] }
func (h *Handler) ServeAPI(w http.ResponseWriter, r *http.Request) {
	req := ParseRequest(r)
	results := h.run(req)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(apiResponse{
		Query:   req.Query,
		Filters: req.Filters,
		Total:   len(results),
		Results: results,
	}); err != nil {
		h.Log.Warn("encode search response failed", zap.Error(err))
	}
}
