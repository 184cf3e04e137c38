// internal/app/store/categories/categorystore.go
package categorystore

import (
	"context"
	"errors"

	"github.com/dalemusser/mlhub/internal/app/system/indexes"
	"github.com/dalemusser/mlhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrDuplicateCategory = errors.New("a category with this id or name already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(indexes.CollCategories)}
}

// ReplaceAll removes every stored category and inserts cats in display order.
func (s *Store) ReplaceAll(ctx context.Context, cats []models.Category) error {
	if _, err := s.c.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(cats) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(cats))
	for i, c := range cats {
		c.Position = i
		docs = append(docs, c)
	}
	if _, err := s.c.InsertMany(ctx, docs); err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateCategory
		}
		return err
	}
	return nil
}

// List returns every category in display order.
func (s *Store) List(ctx context.Context) ([]models.Category, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Category{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of stored categories.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
