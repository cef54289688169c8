// internal/app/system/auth/middleware.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bloodlink-dev/bloodlink/internal/app/system/respond"
	"go.uber.org/zap"
)

type ctxKey string

const claimsKey ctxKey = "sessionClaims"

// CurrentClaims returns the verified token claims attached to the
// request context by RequireToken, and whether they were present.
func CurrentClaims(r *http.Request) (*Claims, bool) {
	c, ok := r.Context().Value(claimsKey).(*Claims)
	return c, ok
}

// RoleFetcher resolves the stored role for an email. The middleware
// never trusts a role supplied by the client; it derives it from the
// verified claims via this lookup.
type RoleFetcher interface {
	FetchRole(ctx context.Context, email string) (string, error)
}

// Middleware gates protected routes on a valid session token cookie.
type Middleware struct {
	tokens *TokenManager
	roles  RoleFetcher
	log    *zap.Logger
}

// NewMiddleware builds the auth gate. roles may be nil if RequireRole
// is never used.
func NewMiddleware(tokens *TokenManager, roles RoleFetcher, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, roles: roles, log: logger}
}

// RequireToken verifies the session token cookie. Absent, malformed,
// or expired tokens get a 401 with an error envelope; valid tokens
// have their claims attached to the request context.
func (m *Middleware) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(CookieName)
		if err != nil {
			respond.Error(w, http.StatusUnauthorized, "missing session token")
			return
		}

		claims, err := m.tokens.Verify(c.Value)
		if err != nil {
			m.log.Info("session token rejected", zap.Error(err))
			if errors.Is(err, ErrTokenExpired) {
				respond.Error(w, http.StatusUnauthorized, "session token expired")
				return
			}
			respond.Error(w, http.StatusUnauthorized, "invalid session token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole ensures the caller's stored role is one of the allowed
// values. It must run after RequireToken. The role comes from the
// users collection keyed by the claims email, never from the request.
func (m *Middleware) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := CurrentClaims(r)
			if !ok {
				respond.Error(w, http.StatusUnauthorized, "missing session token")
				return
			}

			role, err := m.roles.FetchRole(r.Context(), claims.Email)
			if err != nil {
				m.log.Warn("role lookup failed",
					zap.String("email", claims.Email), zap.Error(err))
				respond.Error(w, http.StatusForbidden, "forbidden")
				return
			}

			if _, has := set[strings.ToLower(role)]; !has {
				respond.Error(w, http.StatusForbidden, "forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
