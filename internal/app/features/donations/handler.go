// internal/app/features/donations/handler.go
package donations

import (
	"context"
	"errors"
	"net/http"

	donationstore "github.com/bloodlink-dev/bloodlink/internal/app/store/donations"
	userstore "github.com/bloodlink-dev/bloodlink/internal/app/store/users"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/auth"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/htmlsanitize"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/normalize"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/paging"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/respond"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/timeouts"
	"github.com/bloodlink-dev/bloodlink/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves donation request operations.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// HandleCreate handles POST /blood-donation-request.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.DecodeAndValidate(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid donation request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	dr, err := donationstore.New(h.DB).Create(ctx, models.DonationRequest{
		RequesterName:       req.RequesterName,
		RequesterEmail:      req.RequesterEmail,
		RecipientName:       req.RecipientName,
		RecipientBloodGroup: req.RecipientBloodGroup,
		RecipientDistrict:   req.RecipientDistrict,
		RecipientUpazila:    req.RecipientUpazila,
		HospitalName:        req.HospitalName,
		FullAddress:         htmlsanitize.Plain(req.FullAddress),
		DonationDate:        req.DonationDate,
		DonationTime:        req.DonationTime,
		RequestMessage:      htmlsanitize.Plain(req.RequestMessage),
		DonationStatus:      req.DonationStatus,
	})
	if err != nil {
		h.Log.Error("donation request create failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not create donation request")
		return
	}

	respond.JSON(w, http.StatusCreated, insertAck{InsertedID: dr.ID.Hex()})
}

// ServeListAll handles GET /all-blood-donation-requests.
func (h *Handler) ServeListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := donationstore.New(h.DB).ListAll(ctx)
	if err != nil {
		h.Log.Error("donation request list failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not list donation requests")
		return
	}
	h.writeList(w, list)
}

// ServeByID handles GET /blood-donation-request/{id}.
func (h *Handler) ServeByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	dr, err := donationstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, donationstore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "donation request not found")
			return
		}
		h.Log.Error("donation request lookup failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not load donation request")
		return
	}
	respond.JSON(w, http.StatusOK, dr)
}

// HandleSetStatus handles PATCH /update-req-status/{id}: a donor
// commits to (or resolves) a request, setting the donation status and
// donor identity in one strict update.
func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req statusRequest
	if err := respond.DecodeAndValidate(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid status payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ack, err := donationstore.New(h.DB).SetStatus(ctx, id, req.CurrentStatus, req.DonorName, req.DonorEmail)
	if err != nil {
		h.writeUpdateError(w, "donation status update failed", id, err)
		return
	}
	respond.JSON(w, http.StatusOK, ack)
}

// HandleUpdate handles PUT /update-blood-donation-request/{id}: the
// edit form replaces the full editable field set. Only the requester
// who posted it, or an admin, may edit.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req createRequest
	if err := respond.DecodeAndValidate(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid donation request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := donationstore.New(h.DB)
	if !h.authorizeOwner(ctx, w, r, store, id) {
		return
	}

	ack, err := store.Update(ctx, id, models.DonationRequest{
		RequesterName:       req.RequesterName,
		RequesterEmail:      req.RequesterEmail,
		RecipientName:       req.RecipientName,
		RecipientBloodGroup: req.RecipientBloodGroup,
		RecipientDistrict:   req.RecipientDistrict,
		RecipientUpazila:    req.RecipientUpazila,
		HospitalName:        req.HospitalName,
		FullAddress:         htmlsanitize.Plain(req.FullAddress),
		DonationDate:        req.DonationDate,
		DonationTime:        req.DonationTime,
		RequestMessage:      htmlsanitize.Plain(req.RequestMessage),
	})
	if err != nil {
		h.writeUpdateError(w, "donation request update failed", id, err)
		return
	}
	respond.JSON(w, http.StatusOK, ack)
}

// HandleDelete handles DELETE /blood-donation-request-delete/{id}.
// Only the owner or an admin may delete. An id that no longer exists
// has no owner to check against; it acknowledges with a zero deleted
// count so a repeated delete stays benign.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	claims, ok := auth.CurrentClaims(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing session token")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := donationstore.New(h.DB)
	dr, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, donationstore.ErrNotFound) {
			respond.JSON(w, http.StatusOK, deleteAck{DeletedCount: 0})
			return
		}
		h.Log.Error("ownership lookup failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not load donation request")
		return
	}
	if !h.ownsOrAdmin(ctx, claims, dr) {
		respond.Error(w, http.StatusForbidden, "forbidden")
		return
	}

	deleted, err := store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("donation request delete failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not delete donation request")
		return
	}
	respond.JSON(w, http.StatusOK, deleteAck{DeletedCount: deleted})
}

// ServeByRequester handles GET /blood-donation-individual/{email}.
func (h *Handler) ServeByRequester(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := donationstore.New(h.DB).ListByRequester(ctx, email)
	if err != nil {
		h.Log.Error("requester list failed", zap.String("email", email), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not list donation requests")
		return
	}
	h.writeList(w, list)
}

// ServeRequesterPage handles GET /all-blood-donation-request: one page
// of the requester's own requests, keyed by the email query parameter.
func (h *Handler) ServeRequesterPage(w http.ResponseWriter, r *http.Request) {
	email := normalize.Email(r.URL.Query().Get("email"))
	if email == "" {
		respond.Error(w, http.StatusBadRequest, "email query parameter is required")
		return
	}
	p := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := donationstore.New(h.DB).ListByRequesterPage(ctx, email, p)
	if err != nil {
		h.Log.Error("requester page failed", zap.String("email", email), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not list donation requests")
		return
	}
	h.writeList(w, list)
}

// ServeMyCount handles GET /my-bloodDonationCount/{email}.
func (h *Handler) ServeMyCount(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := donationstore.New(h.DB).CountByRequester(ctx, email)
	if err != nil {
		h.Log.Error("requester count failed", zap.String("email", email), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not count donation requests")
		return
	}
	respond.JSON(w, http.StatusOK, countResponse{Count: n})
}

// ServeCount handles GET /bloodDonationCount.
func (h *Handler) ServeCount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := donationstore.New(h.DB).EstimatedCount(ctx)
	if err != nil {
		h.Log.Error("donation count failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not count donation requests")
		return
	}
	respond.JSON(w, http.StatusOK, countResponse{Count: n})
}

// authorizeOwner checks that the caller owns the request (claims email
// matches the stored requesterEmail) or holds the admin role. It
// writes the error response itself when authorization fails.
func (h *Handler) authorizeOwner(ctx context.Context, w http.ResponseWriter, r *http.Request, store *donationstore.Store, id primitive.ObjectID) bool {
	claims, ok := auth.CurrentClaims(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "missing session token")
		return false
	}

	dr, err := store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, donationstore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "donation request not found")
			return false
		}
		h.Log.Error("ownership lookup failed", zap.String("id", id.Hex()), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not load donation request")
		return false
	}

	if !h.ownsOrAdmin(ctx, claims, dr) {
		respond.Error(w, http.StatusForbidden, "forbidden")
		return false
	}
	return true
}

// ownsOrAdmin reports whether the caller posted the request or holds
// the admin role.
func (h *Handler) ownsOrAdmin(ctx context.Context, claims *auth.Claims, dr models.DonationRequest) bool {
	if dr.RequesterEmail == normalize.Email(claims.Email) {
		return true
	}
	role, err := userstore.New(h.DB).FetchRole(ctx, claims.Email)
	return err == nil && role == models.RoleAdmin
}

func (h *Handler) writeList(w http.ResponseWriter, list []models.DonationRequest) {
	if list == nil {
		list = []models.DonationRequest{}
	}
	respond.JSON(w, http.StatusOK, list)
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	idHex := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "malformed donation request id")
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *Handler) writeUpdateError(w http.ResponseWriter, msg string, id primitive.ObjectID, err error) {
	if errors.Is(err, donationstore.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "donation request not found")
		return
	}
	h.Log.Error(msg, zap.String("id", id.Hex()), zap.Error(err))
	respond.Error(w, http.StatusInternalServerError, "could not update donation request")
}
