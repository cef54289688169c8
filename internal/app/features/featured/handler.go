// internal/app/features/featured/handler.go
package featured

import (
	"context"
	"net/http"

	featuredstore "github.com/bloodlink-dev/bloodlink/internal/app/store/featured"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/respond"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/timeouts"
	"github.com/bloodlink-dev/bloodlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the read-only featured content.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger}
}

// ServeList handles GET /featured.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entries, err := featuredstore.New(h.DB).List(ctx)
	if err != nil {
		h.Log.Error("featured list failed", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not load featured content")
		return
	}
	if entries == nil {
		entries = []models.Featured{}
	}
	respond.JSON(w, http.StatusOK, entries)
}
