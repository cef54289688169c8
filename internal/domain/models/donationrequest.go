// internal/domain/models/donationrequest.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation status values.
const (
	DonationPending    = "pending"
	DonationInProgress = "inprogress"
	DonationDone       = "done"
	DonationCanceled   = "canceled"
)

// DonationRequest is a plea for blood posted by a requester. Donor
// identity fields are empty until a donor commits to the request.
type DonationRequest struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RequesterName       string             `bson:"requesterName" json:"requesterName"`
	RequesterEmail      string             `bson:"requesterEmail" json:"requesterEmail"`
	RecipientName       string             `bson:"recipientName" json:"recipientName"`
	RecipientBloodGroup string             `bson:"recipientBloodGroup" json:"recipientBloodGroup"`
	RecipientDistrict   string             `bson:"recipientDistrict" json:"recipientDistrict"`
	RecipientUpazila    string             `bson:"recipientUpazila" json:"recipientUpazila"`
	HospitalName        string             `bson:"hospitalName" json:"hospitalName"`
	FullAddress         string             `bson:"fullAddress" json:"fullAddress"`
	DonationDate        string             `bson:"donationDate" json:"donationDate"`
	DonationTime        string             `bson:"donationTime" json:"donationTime"`
	RequestMessage      string             `bson:"requestMessage" json:"requestMessage"`
	DonationStatus      string             `bson:"donationStatus" json:"donationStatus"`
	DonorName           string             `bson:"donorName,omitempty" json:"donorName,omitempty"`
	DonorEmail          string             `bson:"donorEmail,omitempty" json:"donorEmail,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
