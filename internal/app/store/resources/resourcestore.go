// internal/app/store/resources/resourcestore.go
package resourcestore

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

// Store persists catalog records in the resources collection.
type Store struct {
	c *mongo.Collection
}

var ErrDuplicateResource = errors.New("a resource with this id already exists")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(indexes.CollResources)}
}

// ReplaceAll removes every stored resource and inserts rs in order. Position
// is set from slice order. Run it inside txn.Run to make the swap atomic.
func (s *Store) ReplaceAll(ctx context.Context, rs []models.Resource) error {
	if _, err := s.c.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(rs) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(rs))
	for i, r := range rs {
		r.Position = i
		docs = append(docs, r)
	}
	if _, err := s.c.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateResource
		}
		return err
	}
	return nil
}

// List returns every resource in catalog order.
func (s *Store) List(ctx context.Context) ([]models.Resource, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Resource{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Count returns the number of stored resources.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
