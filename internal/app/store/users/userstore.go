// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/bloodlink-dev/bloodlink/internal/app/system/normalize"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/paging"
	"github.com/bloodlink-dev/bloodlink/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("a user with this email already exists")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create inserts a new user record. Email is normalized; role and
// status default to donor/active when the client omits them.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Email = normalize.Email(u.Email)
	u.Name = normalize.Name(u.Name)
	if u.Role == "" {
		u.Role = models.RoleDonor
	}
	if u.Status == "" {
		u.Status = models.StatusActive
	}
	u.CreatedAt = time.Now().UTC()

	_, err := s.c.InsertOne(ctx, u)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByEmail retrieves a user by email.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

// FetchRole implements auth.RoleFetcher: it resolves the stored role
// for the verified claims email.
func (s *Store) FetchRole(ctx context.Context, email string) (string, error) {
	var u struct {
		Role string `bson:"role"`
	}
	proj := options.FindOne().SetProjection(bson.M{"role": 1})
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}, proj).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrNotFound
		}
		return "", err
	}
	return normalize.Role(u.Role), nil
}

// UpdateStatus sets a user's status. The update is strict: a missing
// id surfaces as ErrNotFound, never a silent insert.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	return s.setField(ctx, id, "status", normalize.Status(status))
}

// UpdateRole sets a user's role. Strict, like UpdateStatus.
func (s *Store) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (int64, error) {
	return s.setField(ctx, id, "role", normalize.Role(role))
}

func (s *Store) setField(ctx context.Context, id primitive.ObjectID, field, value string) (int64, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{field: value}},
	)
	if err != nil {
		return 0, err
	}
	if res.MatchedCount == 0 {
		return 0, ErrNotFound
	}
	return res.ModifiedCount, nil
}

// List returns one page of users ordered by creation time.
func (s *Store) List(ctx context.Context, p paging.Params) ([]models.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit)

	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// EstimatedCount returns the approximate number of users. It uses
// collection metadata, which is fine for dashboard display but not for
// correctness-critical logic.
func (s *Store) EstimatedCount(ctx context.Context) (int64, error) {
	return s.c.EstimatedDocumentCount(ctx)
}
