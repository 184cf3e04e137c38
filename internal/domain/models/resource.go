package models

import "time"

// Resource is one catalog entry: a document, video, or web link together with
// its descriptive and ranking metadata. Resources are owned by the catalog and
// never mutated after it is built.
type Resource struct {
	ID          string `bson:"_id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`

	Kind     string `bson:"kind" json:"kind"` // "document", "video", or "link"
	URL      string `bson:"url" json:"url"`
	Category string `bson:"category" json:"category"`

	Author      string     `bson:"author,omitempty" json:"author,omitempty"`
	PublishedAt *time.Time `bson:"published_at,omitempty" json:"published_at,omitempty"`
	Rating      *float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	Views       string     `bson:"views,omitempty" json:"views,omitempty"` // popularity text, e.g. "2.1M"

	// Kind-specific display metadata.
	Thumbnail     string `bson:"thumbnail,omitempty" json:"thumbnail,omitempty"`           // video
	Duration      string `bson:"duration,omitempty" json:"duration,omitempty"`             // video
	FileSize      string `bson:"file_size,omitempty" json:"file_size,omitempty"`           // document
	SourceWebsite string `bson:"source_website,omitempty" json:"source_website,omitempty"` // link

	// Position is the record's place in catalog order.
	Position int `bson:"position" json:"-"`
}

// HasAuthor reports whether the resource names an author.
func (r Resource) HasAuthor() bool { return r.Author != "" }

// RatingValue returns the rating, or 0 when the resource is unrated.
func (r Resource) RatingValue() float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}
