package search_test

import (
	"math"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/dalemusser/mlhub/internal/app/system/search"
	"github.com/dalemusser/mlhub/internal/domain/models"
	"github.com/dalemusser/mlhub/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func defaults() models.FilterState { return models.DefaultFilterState() }

func withSort(k models.SortKey) models.FilterState {
	f := defaults()
	f.SortBy = k
	return f
}

func TestSearch_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		filters models.FilterState
		want    []string
	}{
		{"empty query returns everything in catalog order", "", defaults(), []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"text query tensorflow", "tensorflow", defaults(), []string{"5"}},
		{"category Deep Learning", "", models.FilterState{Category: "Deep Learning", Type: models.AllTypes, SortBy: models.SortRelevance}, []string{"2"}},
		{"type YouTube", "", models.FilterState{Category: models.AllCategories, Type: "YouTube", SortBy: models.SortRelevance}, []string{"2", "5", "8"}},
		{"type PDF", "", models.FilterState{Category: models.AllCategories, Type: "PDF", SortBy: models.SortRelevance}, []string{"1", "4", "7"}},
		{"type Web Links", "", models.FilterState{Category: models.AllCategories, Type: "Web Links", SortBy: models.SortRelevance}, []string{"3", "6"}},
		{"highest rated, ties in catalog order", "", withSort(models.SortHighestRated), []string{"2", "1", "6", "3", "8", "4", "5", "7"}},
		{"most popular uses literal digits", "", withSort(models.SortMostPopular), []string{"5", "2", "8", "1", "3", "4", "6", "7"}},
		{"most recent defaults undated to 2024-01-01", "", withSort(models.SortMostRecent), []string{"4", "7", "1", "2", "3", "5", "6", "8"}},
		{"author matches", "andrew ng", defaults(), []string{"1"}},
		{"category text matches", "clustering", defaults(), []string{"7"}},
		{"query plus category", "neural", models.FilterState{Category: "Tools & Libraries", Type: models.AllTypes, SortBy: models.SortRelevance}, []string{"5"}},
		{"category is case-sensitive", "", models.FilterState{Category: "deep learning", Type: models.AllTypes, SortBy: models.SortRelevance}, []string{}},
		{"no match", "quantum chromodynamics", defaults(), []string{}},
	}

	records := testutil.SampleResources()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testutil.IDs(search.Search(records, tt.query, tt.filters))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Search(%q, %+v) mismatch (-want +got):\n%s", tt.query, tt.filters, diff)
			}
		})
	}
}

func TestSearch_PermissiveFallbacks(t *testing.T) {
	records := testutil.SampleResources()
	all := testutil.IDs(records)

	tests := []struct {
		name    string
		filters models.FilterState
	}{
		{"unknown type label passes everything", models.FilterState{Category: models.AllCategories, Type: "Podcasts", SortBy: models.SortRelevance}},
		{"unknown sort key keeps catalog order", models.FilterState{Category: models.AllCategories, Type: models.AllTypes, SortBy: "Alphabetical"}},
		{"zero-value filters act as sentinels", models.FilterState{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testutil.IDs(search.Search(records, "", tt.filters))
			if diff := cmp.Diff(all, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearch_WhitespaceQueryPassesAll(t *testing.T) {
	records := testutil.SampleResources()
	got := search.Search(records, "   \t ", defaults())
	if len(got) != len(records) {
		t.Fatalf("got %d records, want %d", len(got), len(records))
	}
}

func TestSearch_QueryTermIsNotTrimmed(t *testing.T) {
	records := []models.Resource{
		{ID: "a", Title: "learning", Kind: models.ResourceKindLink},
		{ID: "b", Title: "deep learning", Kind: models.ResourceKindLink},
	}
	got := testutil.IDs(search.Search(records, " learning", defaults()))
	if diff := cmp.Diff([]string{"b"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_AbsentAuthorNeverMatches(t *testing.T) {
	records := []models.Resource{
		{ID: "a", Title: "One", Author: "Alice", Kind: models.ResourceKindDocument},
		{ID: "b", Title: "Two", Kind: models.ResourceKindDocument},
	}
	got := testutil.IDs(search.Search(records, "alice", defaults()))
	if diff := cmp.Diff([]string{"a"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_EmptyCatalog(t *testing.T) {
	got := search.Search(nil, "anything", withSort(models.SortMostPopular))
	if got == nil {
		t.Fatal("expected non-nil empty result")
	}
	if len(got) != 0 {
		t.Errorf("expected no results, got %d", len(got))
	}
}

func TestSearch_Deterministic(t *testing.T) {
	records := testutil.SampleResources()
	for _, k := range models.SortKeys {
		f := withSort(k)
		a := search.Search(records, "learning", f)
		b := search.Search(records, "learning", f)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("sort %q: repeated call differs (-first +second):\n%s", k, diff)
		}
	}
}

func TestSearch_ResultIsSubsetOfCatalog(t *testing.T) {
	records := testutil.SampleResources()
	byID := make(map[string]models.Resource, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	queries := []string{"", "neural", "ml", "e", "xyz"}
	for _, q := range queries {
		for _, k := range models.SortKeys {
			for _, typ := range models.TypeLabels {
				f := models.FilterState{Category: models.AllCategories, Type: typ, SortBy: k}
				for _, r := range search.Search(records, q, f) {
					orig, ok := byID[r.ID]
					if !ok {
						t.Fatalf("result %q not in catalog", r.ID)
					}
					if diff := cmp.Diff(orig, r); diff != "" {
						t.Errorf("result %q differs from catalog record (-catalog +result):\n%s", r.ID, diff)
					}
				}
			}
		}
	}
}

func TestSearch_QueryNeverGrowsResults(t *testing.T) {
	records := testutil.SampleResources()
	unfiltered := testutil.IDs(search.Search(records, "", defaults()))

	for _, q := range []string{"neural", "learning", "a", "Kaggle", "pdf", "zzz"} {
		got := testutil.IDs(search.Search(records, q, defaults()))
		for _, id := range got {
			if !slices.Contains(unfiltered, id) {
				t.Errorf("query %q returned %q, which the empty query did not", q, id)
			}
		}
		if len(got) > len(unfiltered) {
			t.Errorf("query %q returned %d records, more than %d", q, len(got), len(unfiltered))
		}
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	records := testutil.SampleResources()
	upper := search.Search(records, "NEURAL", defaults())
	lower := search.Search(records, "neural", defaults())
	if diff := cmp.Diff(lower, upper); diff != "" {
		t.Errorf("NEURAL vs neural (-lower +upper):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"2", "5"}, testutil.IDs(lower)); diff != "" {
		t.Errorf("neural mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_SortIsStable(t *testing.T) {
	r := func(id string, rating float64) models.Resource {
		return models.Resource{ID: id, Title: id, Kind: models.ResourceKindLink, Rating: &rating}
	}
	records := []models.Resource{r("a", 3), r("b", 5), r("c", 3), r("d", 5), r("e", 3)}

	got := testutil.IDs(search.Search(records, "", withSort(models.SortHighestRated)))
	if diff := cmp.Diff([]string{"b", "d", "a", "c", "e"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_MissingFieldsRankLowest(t *testing.T) {
	rating := 1.0
	published := time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)
	records := []models.Resource{
		{ID: "bare", Title: "bare", Kind: models.ResourceKindLink},
		{ID: "rated", Title: "rated", Kind: models.ResourceKindLink, Rating: &rating},
		{ID: "viewed", Title: "viewed", Kind: models.ResourceKindVideo, Views: "3 views"},
		{ID: "old", Title: "old", Kind: models.ResourceKindDocument, PublishedAt: &published},
	}

	tests := []struct {
		key  models.SortKey
		want []string
	}{
		{models.SortHighestRated, []string{"rated", "bare", "viewed", "old"}},
		{models.SortMostPopular, []string{"viewed", "bare", "rated", "old"}},
		// Undated records count as 2024-01-01, which is newer than 2023-06-01.
		{models.SortMostRecent, []string{"bare", "rated", "viewed", "old"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got := testutil.IDs(search.Search(records, "", withSort(tt.key)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	records := testutil.SampleResources()
	before := testutil.IDs(records)

	got := search.Search(records, "", withSort(models.SortHighestRated))
	if diff := cmp.Diff(before, testutil.IDs(records)); diff != "" {
		t.Errorf("input order changed (-before +after):\n%s", diff)
	}

	got[0].Title = "changed"
	if records[1].Title == "changed" {
		t.Error("result shares storage with input")
	}
}

func TestSearch_ConcurrentCallers(t *testing.T) {
	records := testutil.SampleResources()
	want := testutil.IDs(search.Search(records, "learning", withSort(models.SortMostPopular)))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := testutil.IDs(search.Search(records, "learning", withSort(models.SortMostPopular)))
			if !slices.Equal(want, got) {
				t.Errorf("concurrent result %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestParsePopularity(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"2.1M", 21},
		{"856K", 856},
		{"1.2M", 12},
		{"1,234", 1234},
		{"", 0},
		{"N/A", 0},
		{"99999999999999999999", math.MaxInt64},
	}
	for _, tt := range tests {
		if got := search.ParsePopularity(tt.in); got != tt.want {
			t.Errorf("ParsePopularity(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPublishedOrDefault(t *testing.T) {
	if got := search.PublishedOrDefault(models.Resource{}); !got.Equal(search.DefaultPublishedDate) {
		t.Errorf("missing date: got %v, want %v", got, search.DefaultPublishedDate)
	}
	d := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)
	if got := search.PublishedOrDefault(models.Resource{PublishedAt: &d}); !got.Equal(d) {
		t.Errorf("got %v, want %v", got, d)
	}
}
