// internal/app/features/search/request.go
package search

import (
	"net/http"
	"net/url"

	"github.com/dalemusser/mlhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

// Entry points that raise a search. Each page form sends its own value in
// the "from" parameter.
const (
	EntryHero     = "hero"
	EntryCategory = "category"
	EntryFooter   = "footer"
	EntryResults  = "results"
	EntryUnknown  = "unknown"
)

// Request is one parsed search: the free-text query, the filters and the
// entry point that raised it.
type Request struct {
	Query   string
	Filters models.FilterState
	Entry   string
}

// ParseRequest reads q, category, type, sort and from. Missing filters
// become their sentinels; values outside the vocabulary are kept so the
// engine's permissive fallbacks apply. The query is kept untrimmed.
func ParseRequest(r *http.Request) Request {
	f := models.FilterState{
		Category: query.Get(r, "category"),
		Type:     query.Get(r, "type"),
		SortBy:   models.SortKey(query.Get(r, "sort")),
	}
	return Request{
		Query:   r.URL.Query().Get("q"),
		Filters: f.Normalize(),
		Entry:   NormalizeEntry(query.Get(r, "from")),
	}
}

// NormalizeEntry maps anything other than a known entry point to "unknown".
func NormalizeEntry(from string) string {
	switch from {
	case EntryHero, EntryCategory, EntryFooter, EntryResults:
		return from
	default:
		return EntryUnknown
	}
}

// URL builds the /search URL for q and f. Sentinel filters are omitted.
func URL(q string, f models.FilterState, from string) string {
	f = f.Normalize()
	v := url.Values{}
	if q != "" {
		v.Set("q", q)
	}
	if f.Category != models.AllCategories {
		v.Set("category", f.Category)
	}
	if f.Type != models.AllTypes {
		v.Set("type", f.Type)
	}
	if f.SortBy != models.SortRelevance {
		v.Set("sort", string(f.SortBy))
	}
	if from != "" {
		v.Set("from", from)
	}
	if len(v) == 0 {
		return "/search"
	}
	return "/search?" + v.Encode()
}

// ClearFiltersURL resets every filter to its sentinel and keeps the query.
func ClearFiltersURL(q string) string {
	return URL(q, models.DefaultFilterState(), EntryResults)
}
