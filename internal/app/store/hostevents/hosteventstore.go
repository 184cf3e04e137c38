// internal/app/store/hostevents/hosteventstore.go
package hosteventstore

import (
	"context"
	"time"

	"github.com/dalemusser/mlhub/internal/app/system/indexes"
	"github.com/dalemusser/mlhub/internal/app/system/pwa"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Record is a stored host event.
type Record struct {
	ID     string    `bson:"_id"`
	Kind   string    `bson:"kind"`
	Detail string    `bson:"detail,omitempty"`
	At     time.Time `bson:"at"`
}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(indexes.CollHostEvents)}
}

// Insert stores e under a new UUID and returns the record.
func (s *Store) Insert(ctx context.Context, e pwa.Event) (Record, error) {
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	rec := Record{
		ID:     uuid.NewString(),
		Kind:   string(e.Kind),
		Detail: e.Detail,
		At:     at.UTC(),
	}
	if _, err := s.c.InsertOne(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Recent returns up to limit events of kind, newest first. An empty kind
// matches every event.
func (s *Store) Recent(ctx context.Context, kind pwa.EventKind, limit int64) ([]Record, error) {
	filter := bson.M{}
	if kind != "" {
		filter["kind"] = string(kind)
	}
	opts := options.Find().SetSort(bson.D{{Key: "at", Value: -1}}).SetLimit(limit)
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []Record{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
