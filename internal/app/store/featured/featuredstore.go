// internal/app/store/featured/featuredstore.go
package featuredstore

import (
	"context"

	"github.com/bloodlink-dev/bloodlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store reads the curated featured collection. The API never writes
// to it.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("featured")}
}

// List returns all featured entries.
func (s *Store) List(ctx context.Context) ([]models.Featured, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []models.Featured
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
