package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
	"time"

	"github.com/dalemusser/mlhub/internal/domain/models"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedYAML []byte

// Source type names used in seed files.
const (
	SourceTypePDF     = "pdf"
	SourceTypeYouTube = "youtube"
	SourceTypeWeb     = "web"
)

var sourceTypeKinds = map[string]string{
	SourceTypePDF:     models.ResourceKindDocument,
	SourceTypeYouTube: models.ResourceKindVideo,
	SourceTypeWeb:     models.ResourceKindLink,
}

const publishedLayout = "2006-01-02"

// Seed is the decoded form of a seed file.
type Seed struct {
	Categories []models.Category `yaml:"categories"`
	Resources  []SeedResource    `yaml:"resources"`
}

// SeedResource is one record as written in a seed file.
type SeedResource struct {
	ID            string   `yaml:"id"`
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Type          string   `yaml:"type"`
	URL           string   `yaml:"url"`
	Category      string   `yaml:"category"`
	Author        string   `yaml:"author"`
	Published     string   `yaml:"published"`
	Rating        *float64 `yaml:"rating"`
	Views         string   `yaml:"views"`
	Thumbnail     string   `yaml:"thumbnail"`
	Duration      string   `yaml:"duration"`
	FileSize      string   `yaml:"file_size"`
	SourceWebsite string   `yaml:"source_website"`
}

// ParseSeed decodes a YAML seed file. Unknown fields are rejected.
func ParseSeed(data []byte) (Seed, error) {
	var s Seed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	return s, nil
}

// Build converts the seed into models in file order.
func (s Seed) Build() ([]models.Resource, []models.Category, error) {
	records := make([]models.Resource, 0, len(s.Resources))
	for i, sr := range s.Resources {
		kind, ok := sourceTypeKinds[sr.Type]
		if !ok {
			return nil, nil, fmt.Errorf("%w: record %q has type %q", ErrInvalidCatalog, sr.ID, sr.Type)
		}
		r := models.Resource{
			ID:            sr.ID,
			Title:         sr.Title,
			Description:   sr.Description,
			Kind:          kind,
			URL:           sr.URL,
			Category:      sr.Category,
			Author:        sr.Author,
			Rating:        sr.Rating,
			Views:         sr.Views,
			Thumbnail:     sr.Thumbnail,
			Duration:      sr.Duration,
			FileSize:      sr.FileSize,
			SourceWebsite: sr.SourceWebsite,
			Position:      i,
		}
		if sr.Published != "" {
			t, err := time.Parse(publishedLayout, sr.Published)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: record %q published date: %v", ErrInvalidCatalog, sr.ID, err)
			}
			r.PublishedAt = &t
		}
		records = append(records, r)
	}

	cats := make([]models.Category, len(s.Categories))
	for i, c := range s.Categories {
		c.Position = i
		cats[i] = c
	}
	return records, cats, nil
}

var (
	seedOnce sync.Once
	seed     Seed
	seedErr  error
)

// EmbeddedSeed returns the seed compiled into the binary. It is decoded once.
func EmbeddedSeed() (Seed, error) {
	seedOnce.Do(func() {
		seed, seedErr = ParseSeed(embeddedYAML)
	})
	return seed, seedErr
}

// LoadEmbedded builds a Catalog from the embedded seed.
func LoadEmbedded() (*Catalog, error) {
	s, err := EmbeddedSeed()
	if err != nil {
		return nil, err
	}
	records, cats, err := s.Build()
	if err != nil {
		return nil, err
	}
	return New(records, cats)
}
