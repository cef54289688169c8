// internal/app/features/session/handler.go
package session

import (
	"net/http"
	"time"

	"github.com/bloodlink-dev/bloodlink/internal/app/system/auth"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/normalize"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/respond"
	"go.uber.org/zap"
)

// Handler issues session tokens.
type Handler struct {
	Tokens       *auth.TokenManager
	CookieDomain string
	CookieTTL    time.Duration
	Secure       bool // prod: Secure + SameSite=None cookies
	Log          *zap.Logger
}

// NewHandler constructs the session handler. secure should be true in
// production deployments only.
func NewHandler(tokens *auth.TokenManager, cookieDomain string, ttl time.Duration, secure bool, logger *zap.Logger) *Handler {
	return &Handler{
		Tokens:       tokens,
		CookieDomain: cookieDomain,
		CookieTTL:    ttl,
		Secure:       secure,
		Log:          logger,
	}
}

// HandleIssue handles POST /jwt: it signs a token for the submitted
// identity, sets it as the HTTP-only session cookie, and echoes the
// raw token in the body.
func (h *Handler) HandleIssue(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := respond.DecodeAndValidate(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "a valid email is required")
		return
	}

	email := normalize.Email(req.Email)
	token, err := h.Tokens.Issue(email)
	if err != nil {
		h.Log.Error("token issue failed", zap.String("email", email), zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "could not issue session token")
		return
	}

	auth.SetTokenCookie(w, token, h.CookieDomain, h.CookieTTL, h.Secure)
	respond.JSON(w, http.StatusOK, issueResponse{Token: token})
}
