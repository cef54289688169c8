// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/bloodlink-dev/bloodlink/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string) models.User {
	f.t.Helper()

	user := models.User{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Email:      email,
		BloodGroup: "O+",
		District:   "Dhaka",
		Upazila:    "Savar",
		Role:       role,
		Status:     models.StatusActive,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateDonationRequest creates a pending test donation request for
// the given requester.
func (f *Fixtures) CreateDonationRequest(ctx context.Context, requesterName, requesterEmail string) models.DonationRequest {
	f.t.Helper()

	dr := models.DonationRequest{
		ID:                  primitive.NewObjectID(),
		RequesterName:       requesterName,
		RequesterEmail:      requesterEmail,
		RecipientName:       "Test Recipient",
		RecipientBloodGroup: "A+",
		RecipientDistrict:   "Dhaka",
		RecipientUpazila:    "Savar",
		HospitalName:        "Test General Hospital",
		FullAddress:         "12 Test Road, Dhaka",
		DonationDate:        "2026-01-15",
		DonationTime:        "10:30",
		RequestMessage:      "Needed before surgery",
		DonationStatus:      models.DonationPending,
		CreatedAt:           time.Now().UTC(),
	}

	if _, err := f.db.Collection("donation-requests").InsertOne(ctx, dr); err != nil {
		f.t.Fatalf("failed to create test donation request: %v", err)
	}
	return dr
}

// CreateFeatured creates a featured entry.
func (f *Fixtures) CreateFeatured(ctx context.Context, title string) models.Featured {
	f.t.Helper()

	entry := models.Featured{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: "A donor story",
		DonorName:   "Test Donor",
	}

	if _, err := f.db.Collection("featured").InsertOne(ctx, entry); err != nil {
		f.t.Fatalf("failed to create featured entry: %v", err)
	}
	return entry
}
