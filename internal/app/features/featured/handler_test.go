package featured_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bloodlink-dev/bloodlink/internal/app/features/featured"
	"github.com/bloodlink-dev/bloodlink/internal/domain/models"
	"github.com/bloodlink-dev/bloodlink/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func TestServeList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	r := chi.NewRouter()
	featured.MountRoutes(r, featured.NewHandler(db, zap.NewNop()))

	// Empty collection serves an empty array, not null.
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/featured", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("empty list body: got %q, want %q", body, "[]\n")
	}

	fx.CreateFeatured(ctx, "A life saved in Savar")
	fx.CreateFeatured(ctx, "Donor of the month")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/featured", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var entries []models.Featured
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("failed to parse entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(entries))
	}
}
