// internal/domain/models/funddonation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FundDonation records a monetary contribution to the platform.
type FundDonation struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	DonorName  string             `bson:"donorName" json:"donorName"`
	DonorEmail string             `bson:"donorEmail" json:"donorEmail"`
	Amount     float64            `bson:"amount" json:"amount"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
