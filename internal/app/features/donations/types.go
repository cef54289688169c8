// internal/app/features/donations/types.go
package donations

// createRequest carries the fields a requester submits when posting a
// plea. The json keys match the documents already stored by existing
// BloodLink clients.
type createRequest struct {
	RequesterName       string `json:"requesterName" validate:"required"`
	RequesterEmail      string `json:"requesterEmail" validate:"required,email"`
	RecipientName       string `json:"recipientName" validate:"required"`
	RecipientBloodGroup string `json:"recipientBloodGroup" validate:"required"`
	RecipientDistrict   string `json:"recipientDistrict" validate:"required"`
	RecipientUpazila    string `json:"recipientUpazila"`
	HospitalName        string `json:"hospitalName" validate:"required"`
	FullAddress         string `json:"fullAddress" validate:"required"`
	DonationDate        string `json:"donationDate" validate:"required"`
	DonationTime        string `json:"donationTime" validate:"required"`
	RequestMessage      string `json:"requestMessage"`
	DonationStatus      string `json:"donationStatus" validate:"omitempty,oneof=pending inprogress done canceled"`
}

// statusRequest is the donor-commit partial update. The currentStatus
// key is what existing clients send.
type statusRequest struct {
	CurrentStatus string `json:"currentStatus" validate:"required,oneof=pending inprogress done canceled"`
	DonorName     string `json:"donorName"`
	DonorEmail    string `json:"donorEmail" validate:"omitempty,email"`
}

type insertAck struct {
	InsertedID string `json:"insertedId"`
}

type deleteAck struct {
	DeletedCount int64 `json:"deletedCount"`
}

type countResponse struct {
	Count int64 `json:"count"`
}
