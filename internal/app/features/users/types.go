// internal/app/features/users/types.go
package users

// createRequest is the public signup payload. Role is capped at the
// self-assignable values; admin is granted only through the gated
// role PATCH. Status likewise cannot be asserted outside the known
// set.
type createRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Avatar     string `json:"avatar" validate:"omitempty,url"`
	BloodGroup string `json:"bloodGroup"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
	Role       string `json:"role" validate:"omitempty,oneof=donor volunteer"`
	Status     string `json:"status" validate:"omitempty,oneof=active blocked"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=active blocked"`
}

type roleRequest struct {
	Role string `json:"role" validate:"required"`
}

type insertAck struct {
	InsertedID string `json:"insertedId"`
}

type updateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type countResponse struct {
	Count int64 `json:"count"`
}
