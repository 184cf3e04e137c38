// internal/domain/models/filters.go
package models

// AllCategories is the category filter sentinel: no restriction on category.
const AllCategories = "All Categories"

// SortKey selects the order of search results.
type SortKey string

// Sort keys, spelled exactly as the filter vocabulary presents them.
const (
	SortRelevance    SortKey = "Relevance"
	SortMostRecent   SortKey = "Most Recent"
	SortHighestRated SortKey = "Highest Rated"
	SortMostPopular  SortKey = "Most Popular"
)

// SortKeys lists the sort vocabulary in display order.
var SortKeys = []SortKey{SortRelevance, SortMostRecent, SortHighestRated, SortMostPopular}

// FilterState is the category filter, type filter and sort key governing one
// search. It is a value: callers build a new one per search.
type FilterState struct {
	Category string  `json:"category"`
	Type     string  `json:"type"`
	SortBy   SortKey `json:"sort_by"`
}

// DefaultFilterState returns the all-sentinel filter, which restricts nothing
// and keeps catalog order. It is also the "clear filters" state.
func DefaultFilterState() FilterState {
	return FilterState{
		Category: AllCategories,
		Type:     AllTypes,
		SortBy:   SortRelevance,
	}
}

// Normalize fills empty fields with their sentinels. Non-empty values are
// kept as given, including values outside the vocabulary.
func (f FilterState) Normalize() FilterState {
	if f.Category == "" {
		f.Category = AllCategories
	}
	if f.Type == "" {
		f.Type = AllTypes
	}
	if f.SortBy == "" {
		f.SortBy = SortRelevance
	}
	return f
}

// IsDefault reports whether f restricts nothing and keeps catalog order.
func (f FilterState) IsDefault() bool {
	return f.Normalize() == DefaultFilterState()
}
