// internal/app/store/donations/donationstore.go
package donationstore

import (
	"context"
	"errors"
	"time"

	"github.com/bloodlink-dev/bloodlink/internal/app/system/normalize"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/paging"
	"github.com/bloodlink-dev/bloodlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrNotFound = errors.New("donation request not found")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("donation-requests")}
}

// Create inserts a new donation request. Status defaults to pending.
func (s *Store) Create(ctx context.Context, dr models.DonationRequest) (models.DonationRequest, error) {
	dr.ID = primitive.NewObjectID()
	dr.RequesterEmail = normalize.Email(dr.RequesterEmail)
	if dr.DonationStatus == "" {
		dr.DonationStatus = models.DonationPending
	}
	dr.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, dr); err != nil {
		return models.DonationRequest{}, err
	}
	return dr, nil
}

// GetByID retrieves a single donation request.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.DonationRequest, error) {
	var dr models.DonationRequest
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&dr)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.DonationRequest{}, ErrNotFound
		}
		return models.DonationRequest{}, err
	}
	return dr, nil
}

// ListAll returns every donation request, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.DonationRequest, error) {
	return s.find(ctx, bson.M{}, options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}))
}

// ListByRequester returns every donation request posted by the given
// requester email.
func (s *Store) ListByRequester(ctx context.Context, email string) ([]models.DonationRequest, error) {
	return s.find(ctx, bson.M{"requesterEmail": normalize.Email(email)},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}))
}

// ListByRequesterPage returns one page of a requester's donation
// requests.
func (s *Store) ListByRequesterPage(ctx context.Context, email string, p paging.Params) ([]models.DonationRequest, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit)
	return s.find(ctx, bson.M{"requesterEmail": normalize.Email(email)}, opts)
}

func (s *Store) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.DonationRequest, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reqs []models.DonationRequest
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// UpdateAck reports the outcome of a strict update.
type UpdateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// Update replaces the fixed editable field set of a request. The
// donation status is not part of the set; it changes only through
// SetStatus. The update is strict: no match surfaces as ErrNotFound
// rather than an upsert creating a partial document.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, dr models.DonationRequest) (UpdateAck, error) {
	set := bson.M{
		"requesterName":       dr.RequesterName,
		"requesterEmail":      normalize.Email(dr.RequesterEmail),
		"recipientName":       dr.RecipientName,
		"recipientBloodGroup": dr.RecipientBloodGroup,
		"recipientDistrict":   dr.RecipientDistrict,
		"recipientUpazila":    dr.RecipientUpazila,
		"hospitalName":        dr.HospitalName,
		"fullAddress":         dr.FullAddress,
		"donationDate":        dr.DonationDate,
		"donationTime":        dr.DonationTime,
		"requestMessage":      dr.RequestMessage,
	}
	return s.setFields(ctx, id, set)
}

// SetStatus applies the donor-commit partial update: donation status
// plus donor identity. Repeating the same update is idempotent.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status, donorName, donorEmail string) (UpdateAck, error) {
	return s.setFields(ctx, id, bson.M{
		"donationStatus": status,
		"donorName":      donorName,
		"donorEmail":     normalize.Email(donorEmail),
	})
}

func (s *Store) setFields(ctx context.Context, id primitive.ObjectID, set bson.M) (UpdateAck, error) {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return UpdateAck{}, err
	}
	if res.MatchedCount == 0 {
		return UpdateAck{}, ErrNotFound
	}
	return UpdateAck{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// Delete removes a donation request. Deleting an id that does not
// exist is not an error; the zero count is the acknowledgment.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountByRequester returns the exact number of requests posted by a
// requester.
func (s *Store) CountByRequester(ctx context.Context, email string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"requesterEmail": normalize.Email(email)})
}

// EstimatedCount returns the approximate total number of donation
// requests from collection metadata.
func (s *Store) EstimatedCount(ctx context.Context) (int64, error) {
	return s.c.EstimatedDocumentCount(ctx)
}
