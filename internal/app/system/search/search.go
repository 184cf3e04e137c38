// internal/app/system/search/search.go

// Package search is the query engine behind every MLHub search: a pure
// function from (records, query, filters) to a freshly allocated, ordered
// subset of the records.
//
// Search runs four stages in order: text filter, category filter, type
// filter, sort. It never fails and never mutates its input, so the shared
// catalog can be searched from any number of goroutines at once.
package search

import (
	"strings"

	"github.com/dalemusser/mlhub/internal/domain/models"
)

// Search returns the records matching query and filters, ordered by
// filters.SortBy. Empty filter fields are treated as their sentinels.
// The result is never nil and never shares a backing array with records.
func Search(records []models.Resource, query string, filters models.FilterState) []models.Resource {
	filters = filters.Normalize()

	out := make([]models.Resource, 0, len(records))
	term := strings.ToLower(query)
	hasTerm := strings.TrimSpace(query) != ""
	kind, filterKind := kindFilter(filters.Type)

	for _, r := range records {
		if hasTerm && !matchesText(r, term) {
			continue
		}
		if filters.Category != models.AllCategories && r.Category != filters.Category {
			continue
		}
		if filterKind && r.Kind != kind {
			continue
		}
		out = append(out, r)
	}

	sortResults(out, filters.SortBy)
	return out
}

// matchesText reports whether the lower-cased term occurs in the record's
// title, description, category, or author. An absent author never matches.
func matchesText(r models.Resource, term string) bool {
	if strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Description), term) ||
		strings.Contains(strings.ToLower(r.Category), term) {
		return true
	}
	return r.HasAuthor() && strings.Contains(strings.ToLower(r.Author), term)
}

// kindFilter resolves a type label. Unknown labels, like the sentinel,
// disable the type filter.
func kindFilter(label string) (string, bool) {
	if label == models.AllTypes {
		return "", false
	}
	return models.KindForTypeLabel(label)
}
