// internal/domain/models/featured.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Featured is read-only highlight content (donor stories, testimonials)
// shown on the landing page. This API exposes no mutation endpoints for
// it; the collection is curated out of band.
type Featured struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	DonorName   string             `bson:"donorName,omitempty" json:"donorName,omitempty"`
}
