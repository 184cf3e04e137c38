// Package catalog holds the immutable resource catalog: the ordered records
// and the category descriptors shown on the landing page.
//
// A Catalog is built once at startup, from the embedded seed or from the
// Mongo stores, and is shared read-only by every request goroutine.
package catalog

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dalemusser/mlhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/mlhub/internal/app/system/search"
	"github.com/dalemusser/mlhub/internal/domain/models"
)

// ErrInvalidCatalog is returned (wrapped with detail) when records or
// categories fail load-time validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is an immutable, ordered set of resources plus the category list.
type Catalog struct {
	records    []models.Resource
	categories []models.Category

	catByID   map[string]int
	catByName map[string]int
	unknown   []string
}

// FilterOptions is the vocabulary offered by the filter and sort controls.
// Each list starts with its "no restriction" entry.
type FilterOptions struct {
	Categories []string         `json:"categories"`
	Types      []string         `json:"types"`
	SortKeys   []models.SortKey `json:"sort_keys"`
}

// New validates records and categories and returns a Catalog holding deep
// copies of them. Text fields are stripped of markup. Positions are
// reassigned from slice order.
func New(records []models.Resource, categories []models.Category) (*Catalog, error) {
	c := &Catalog{
		records:    make([]models.Resource, 0, len(records)),
		categories: make([]models.Category, 0, len(categories)),
		catByID:    make(map[string]int, len(categories)),
		catByName:  make(map[string]int, len(categories)),
	}

	for i, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("%w: category %d has an empty id", ErrInvalidCatalog, i)
		}
		if _, dup := c.catByID[cat.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category id %q", ErrInvalidCatalog, cat.ID)
		}
		cat.Name = htmlsanitize.StripTags(cat.Name)
		cat.Description = htmlsanitize.StripTags(cat.Description)
		if cat.Name == "" {
			return nil, fmt.Errorf("%w: category %q has an empty name", ErrInvalidCatalog, cat.ID)
		}
		cat.Position = i
		c.catByID[cat.ID] = i
		if _, seen := c.catByName[cat.Name]; !seen {
			c.catByName[cat.Name] = i
		}
		c.categories = append(c.categories, cat)
	}

	seen := make(map[string]struct{}, len(records))
	unknown := make(map[string]struct{})
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("%w: record %d has an empty id", ErrInvalidCatalog, i)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate record id %q", ErrInvalidCatalog, r.ID)
		}
		seen[r.ID] = struct{}{}
		if !models.IsValidResourceKind(r.Kind) {
			return nil, fmt.Errorf("%w: record %q has kind %q", ErrInvalidCatalog, r.ID, r.Kind)
		}

		r = cloneResource(r)
		r.Title = htmlsanitize.StripTags(r.Title)
		r.Description = htmlsanitize.StripTags(r.Description)
		r.Category = htmlsanitize.StripTags(r.Category)
		r.Author = htmlsanitize.StripTags(r.Author)
		if r.Title == "" {
			return nil, fmt.Errorf("%w: record %q has an empty title", ErrInvalidCatalog, r.ID)
		}
		r.Position = i

		if _, ok := c.catByName[r.Category]; !ok {
			if _, noted := unknown[r.Category]; !noted {
				unknown[r.Category] = struct{}{}
				c.unknown = append(c.unknown, r.Category)
			}
		}
		c.records = append(c.records, r)
	}

	return c, nil
}

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.records) }

// Records returns a copy of the records in catalog order.
func (c *Catalog) Records() []models.Resource {
	out := make([]models.Resource, len(c.records))
	for i, r := range c.records {
		out[i] = cloneResource(r)
	}
	return out
}

// Categories returns a copy of the categories in display order.
func (c *Catalog) Categories() []models.Category {
	return slices.Clone(c.categories)
}

// CategoryByID looks up a category by its slug.
func (c *Catalog) CategoryByID(id string) (models.Category, bool) {
	i, ok := c.catByID[id]
	if !ok {
		return models.Category{}, false
	}
	return c.categories[i], true
}

// CategoryByName looks up a category by its exact display name.
func (c *Catalog) CategoryByName(name string) (models.Category, bool) {
	i, ok := c.catByName[name]
	if !ok {
		return models.Category{}, false
	}
	return c.categories[i], true
}

// UnknownCategories lists record category values that match no category
// name, in first-seen order.
func (c *Catalog) UnknownCategories() []string {
	return slices.Clone(c.unknown)
}

// Search runs the query engine over the catalog. The result is a fresh slice.
func (c *Catalog) Search(query string, filters models.FilterState) []models.Resource {
	return search.Search(c.records, query, filters)
}

// Filters returns the filter vocabulary for the search controls.
func (c *Catalog) Filters() FilterOptions {
	cats := make([]string, 0, len(c.categories)+1)
	cats = append(cats, models.AllCategories)
	for _, cat := range c.categories {
		cats = append(cats, cat.Name)
	}
	return FilterOptions{
		Categories: cats,
		Types:      slices.Clone(models.TypeLabels),
		SortKeys:   slices.Clone(models.SortKeys),
	}
}

func cloneResource(r models.Resource) models.Resource {
	if r.PublishedAt != nil {
		t := *r.PublishedAt
		r.PublishedAt = &t
	}
	if r.Rating != nil {
		v := *r.Rating
		r.Rating = &v
	}
	return r
}
