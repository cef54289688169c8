package funds_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bloodlink-dev/bloodlink/internal/app/features/funds"
	userstore "github.com/bloodlink-dev/bloodlink/internal/app/store/users"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/auth"
	"github.com/bloodlink-dev/bloodlink/internal/domain/models"
	"github.com/bloodlink-dev/bloodlink/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func setup(t *testing.T) (chi.Router, *auth.TokenManager) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	tokens, err := auth.NewTokenManager(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	mw := auth.NewMiddleware(tokens, userstore.New(db), zap.NewNop())

	r := chi.NewRouter()
	funds.MountRoutes(r, funds.NewHandler(db, zap.NewNop()), mw)
	return r, tokens
}

func TestCreateAndList(t *testing.T) {
	router, tokens := setup(t)

	body := `{"donorName":"Salma","donorEmail":"Salma@X.com","amount":500}`
	req := httptest.NewRequest("POST", "/funds", strings.NewReader(body))
	tok, err := tokens.Issue("salma@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tok})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: got %d, body %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/funds", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("list: got %d", rec.Code)
	}
	var list []models.FundDonation
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to parse list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list length: got %d, want 1", len(list))
	}
	if list[0].DonorEmail != "salma@x.com" {
		t.Errorf("donor email not normalized: %q", list[0].DonorEmail)
	}
	if list[0].Amount != 500 {
		t.Errorf("amount: got %v, want 500", list[0].Amount)
	}
}

func TestCreate_RequiresSession(t *testing.T) {
	router, _ := setup(t)

	body := `{"donorName":"Salma","donorEmail":"salma@x.com","amount":500}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/funds", strings.NewReader(body)))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestCreate_RejectsNonPositiveAmount(t *testing.T) {
	router, tokens := setup(t)

	tok, err := tokens.Issue("salma@x.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	for _, body := range []string{
		`{"donorName":"Salma","donorEmail":"salma@x.com","amount":0}`,
		`{"donorName":"Salma","donorEmail":"salma@x.com","amount":-20}`,
	} {
		req := httptest.NewRequest("POST", "/funds", strings.NewReader(body))
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: tok})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: got %d, want %d", body, rec.Code, http.StatusBadRequest)
		}
	}
}
