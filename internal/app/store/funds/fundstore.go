// internal/app/store/funds/fundstore.go
package fundstore

import (
	"context"
	"time"

	"github.com/bloodlink-dev/bloodlink/internal/app/system/normalize"
	"github.com/bloodlink-dev/bloodlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("fund")}
}

// Create records a fund donation.
func (s *Store) Create(ctx context.Context, fd models.FundDonation) (models.FundDonation, error) {
	fd.ID = primitive.NewObjectID()
	fd.DonorEmail = normalize.Email(fd.DonorEmail)
	fd.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, fd); err != nil {
		return models.FundDonation{}, err
	}
	return fd, nil
}

// List returns all fund donations, newest first.
func (s *Store) List(ctx context.Context) ([]models.FundDonation, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var donations []models.FundDonation
	if err := cur.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}
