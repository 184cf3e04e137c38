package search

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/mlhub/internal/domain/models"
)

// DefaultPublishedDate stands in for a missing publication date when sorting
// by recency. It is a fixed date, not "now".
var DefaultPublishedDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// sortResults orders rs in place. Every order is descending and stable;
// Relevance and unknown keys keep the filtered order.
func sortResults(rs []models.Resource, key models.SortKey) {
	switch key {
	case models.SortMostRecent:
		slices.SortStableFunc(rs, func(a, b models.Resource) int {
			return PublishedOrDefault(b).Compare(PublishedOrDefault(a))
		})
	case models.SortHighestRated:
		slices.SortStableFunc(rs, func(a, b models.Resource) int {
			return cmp.Compare(b.RatingValue(), a.RatingValue())
		})
	case models.SortMostPopular:
		slices.SortStableFunc(rs, func(a, b models.Resource) int {
			return cmp.Compare(ParsePopularity(b.Views), ParsePopularity(a.Views))
		})
	}
}

// PublishedOrDefault returns the record's publication date, or
// DefaultPublishedDate when it has none.
func PublishedOrDefault(r models.Resource) time.Time {
	if r.PublishedAt == nil || r.PublishedAt.IsZero() {
		return DefaultPublishedDate
	}
	return *r.PublishedAt
}

// ParsePopularity turns a popularity string into a ranking number by keeping
// only its decimal digits: "2.1M" is 21 and "856K" is 856. Unit suffixes are
// not interpreted. Strings without digits rank as 0; values too large for
// int64 rank as math.MaxInt64.
func ParsePopularity(views string) int64 {
	var b strings.Builder
	for _, c := range views {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return math.MaxInt64
	}
	return n
}
