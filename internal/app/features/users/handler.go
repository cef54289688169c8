// internal/app/features/users/handler.go
package users

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/bloodlink-dev/bloodlink/internal/app/store/users"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/paging"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/respond"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/timeouts"
	"github.com/bloodlink-dev/bloodlink/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves user record operations.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// HandleCreate handles POST /users: signup records submitted by the
// client after external identity verification.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.DecodeAndValidate(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid user payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := userstore.New(h.DB).Create(ctx, models.User{
		Name:       req.Name,
		Email:      req.Email,
		Avatar:     req.Avatar,
		BloodGroup: req.BloodGroup,
		District:   req.District,
		Upazila:    req.Upazila,
		Role:       req.Role,
		Status:     req.Status,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			respond.Error(w, http.StatusConflict, "a user with this email already exists")
			return
		}
		h.Log.Error("user create failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not create user")
		return
	}

	respond.JSON(w, http.StatusCreated, insertAck{InsertedID: u.ID.Hex()})
}

// ServeByEmail handles GET /user-role/{email} and GET /user-status/{email}.
// Both routes return the full user document keyed by email; the client
// reads whichever field it came for.
func (h *Handler) ServeByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := userstore.New(h.DB).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		h.Log.Error("user lookup failed", zap.String("email", email), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not load user")
		return
	}
	respond.JSON(w, http.StatusOK, u)
}

// HandleUpdateStatus handles PATCH /update-user-status/{id}.
func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req statusRequest
	if err := respond.DecodeAndValidate(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "status must be active or blocked")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	modified, err := userstore.New(h.DB).UpdateStatus(ctx, id, req.Status)
	if err != nil {
		h.writeUpdateError(w, "user status update failed", id, err)
		return
	}
	respond.JSON(w, http.StatusOK, updateAck{MatchedCount: 1, ModifiedCount: modified})
}

// HandleUpdateRole handles PATCH /update-user-role/{id}.
func (h *Handler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req roleRequest
	if err := respond.DecodeAndValidate(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "role is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	modified, err := userstore.New(h.DB).UpdateRole(ctx, id, req.Role)
	if err != nil {
		h.writeUpdateError(w, "user role update failed", id, err)
		return
	}
	respond.JSON(w, http.StatusOK, updateAck{MatchedCount: 1, ModifiedCount: modified})
}

// ServeList handles GET /all-users with page/limit pagination.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	p := paging.Parse(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := userstore.New(h.DB).List(ctx, p)
	if err != nil {
		h.Log.Error("user list failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not list users")
		return
	}
	if list == nil {
		list = []models.User{}
	}
	respond.JSON(w, http.StatusOK, list)
}

// ServeCount handles GET /usersCount.
func (h *Handler) ServeCount(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	n, err := userstore.New(h.DB).EstimatedCount(ctx)
	if err != nil {
		h.Log.Error("user count failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not count users")
		return
	}
	respond.JSON(w, http.StatusOK, countResponse{Count: n})
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	idHex := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "malformed user id")
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *Handler) writeUpdateError(w http.ResponseWriter, msg string, id primitive.ObjectID, err error) {
	if errors.Is(err, userstore.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "user not found")
		return
	}
	h.Log.Error(msg, zap.String("id", id.Hex()), zap.Error(err))
	respond.Error(w, http.StatusInternalServerError, "could not update user")
}
