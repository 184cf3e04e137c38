package models

// Category describes one topic area of the catalog.
//
// ResourceCount is author-supplied display data; it is not derived from the
// records that carry the category.
type Category struct {
	ID            string `bson:"_id" json:"id" yaml:"id"`
	Name          string `bson:"name" json:"name" yaml:"name"`
	Description   string `bson:"description" json:"description" yaml:"description"`
	Icon          string `bson:"icon" json:"icon" yaml:"icon"`
	ResourceCount int    `bson:"resource_count" json:"count" yaml:"count"`

	Position int `bson:"position" json:"-" yaml:"-"`
}
