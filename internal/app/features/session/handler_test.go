package session_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bloodlink-dev/bloodlink/internal/app/features/session"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/auth"
	"go.uber.org/zap"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newHandler(t *testing.T, secure bool) (*session.Handler, *auth.TokenManager) {
	t.Helper()
	tm, err := auth.NewTokenManager(testSecret, time.Hour)
	if err != nil {
		t.Fatalf("NewTokenManager: %v", err)
	}
	return session.NewHandler(tm, "", time.Hour, secure, zap.NewNop()), tm
}

func TestHandleIssue(t *testing.T) {
	h, tm := newHandler(t, false)

	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	rec := httptest.NewRecorder()
	h.HandleIssue(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	if body.Token == "" {
		t.Fatal("expected token in response body")
	}

	// The body token must verify and carry the submitted email.
	claims, err := tm.Verify(body.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("claims email: got %q, want %q", claims.Email, "a@x.com")
	}

	// The same token must arrive as an HTTP-only cookie.
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != auth.CookieName {
		t.Errorf("cookie name: got %q, want %q", c.Name, auth.CookieName)
	}
	if c.Value != body.Token {
		t.Error("cookie token differs from body token")
	}
	if !c.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if c.Secure {
		t.Error("dev-mode cookie must not be Secure")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Errorf("dev-mode cookie SameSite: got %v, want Strict", c.SameSite)
	}
}

func TestHandleIssue_ProductionCookie(t *testing.T) {
	h, _ := newHandler(t, true)

	req := httptest.NewRequest("POST", "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	rec := httptest.NewRecorder()
	h.HandleIssue(rec, req)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	c := cookies[0]
	if !c.Secure {
		t.Error("production cookie must be Secure")
	}
	if c.SameSite != http.SameSiteNoneMode {
		t.Errorf("production cookie SameSite: got %v, want None", c.SameSite)
	}
}

func TestHandleIssue_BadBody(t *testing.T) {
	h, _ := newHandler(t, false)

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{}`},
		{"invalid email", `{"email":"nope"}`},
		{"malformed json", `{"email"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/jwt", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.HandleIssue(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if len(rec.Result().Cookies()) != 0 {
				t.Error("no cookie should be set on rejection")
			}
		})
	}
}
