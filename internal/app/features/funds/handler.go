// internal/app/features/funds/handler.go
package funds

import (
	"context"
	"net/http"

	fundstore "github.com/bloodlink-dev/bloodlink/internal/app/store/funds"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/respond"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/timeouts"
	"github.com/bloodlink-dev/bloodlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type createRequest struct {
	DonorName  string  `json:"donorName" validate:"required"`
	DonorEmail string  `json:"donorEmail" validate:"required,email"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

type insertAck struct {
	InsertedID string `json:"insertedId"`
}

// Handler serves fund donation operations.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// HandleCreate handles POST /funds.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.DecodeAndValidate(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid fund donation payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	fd, err := fundstore.New(h.DB).Create(ctx, models.FundDonation{
		DonorName:  req.DonorName,
		DonorEmail: req.DonorEmail,
		Amount:     req.Amount,
	})
	if err != nil {
		h.Log.Error("fund donation create failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not record fund donation")
		return
	}
	respond.JSON(w, http.StatusCreated, insertAck{InsertedID: fd.ID.Hex()})
}

// ServeList handles GET /funds.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := fundstore.New(h.DB).List(ctx)
	if err != nil {
		h.Log.Error("fund donation list failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not list fund donations")
		return
	}
	if list == nil {
		list = []models.FundDonation{}
	}
	respond.JSON(w, http.StatusOK, list)
}
