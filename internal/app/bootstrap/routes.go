// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	donationsfeature "github.com/bloodlink-dev/bloodlink/internal/app/features/donations"
	featuredfeature "github.com/bloodlink-dev/bloodlink/internal/app/features/featured"
	fundsfeature "github.com/bloodlink-dev/bloodlink/internal/app/features/funds"
	healthfeature "github.com/bloodlink-dev/bloodlink/internal/app/features/health"
	sessionfeature "github.com/bloodlink-dev/bloodlink/internal/app/features/session"
	usersfeature "github.com/bloodlink-dev/bloodlink/internal/app/features/users"
	userstore "github.com/bloodlink-dev/bloodlink/internal/app/store/users"
	"github.com/bloodlink-dev/bloodlink/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and Startup have completed. CORS, request limits, and the server
// itself are WAFFLE core concerns; this function only assembles the
// BloodLink routes:
//  1. Build the token manager and auth middleware.
//  2. Mount per-feature routes with their per-route auth policy.
//  3. Return the configured router.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.BloodLinkMongoDatabase

	tokens, err := auth.NewTokenManager(appCfg.TokenSecret, appCfg.TokenTTL)
	if err != nil {
		logger.Error("token manager init failed", zap.Error(err))
		return nil, err
	}

	// Roles are resolved from the users collection so a role change
	// takes effect on the next request, not the next token.
	mw := auth.NewMiddleware(tokens, userstore.New(db), logger)

	// Secure cookies (and SameSite=None) only in production mode;
	// local dev over http needs non-secure SameSite=Strict cookies.
	secure := coreCfg.Env == "prod"

	r := chi.NewRouter()

	// Liveness probe for load balancers.
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("BloodLink API is running"))
	})

	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(deps.BloodLinkMongoClient, logger)))

	sessionfeature.MountRoutes(r, sessionfeature.NewHandler(tokens, appCfg.CookieDomain, appCfg.TokenTTL, secure, logger))
	featuredfeature.MountRoutes(r, featuredfeature.NewHandler(db, logger))
	usersfeature.MountRoutes(r, usersfeature.NewHandler(db, logger), mw)
	donationsfeature.MountRoutes(r, donationsfeature.NewHandler(db, logger), mw)
	fundsfeature.MountRoutes(r, fundsfeature.NewHandler(db, logger), mw)

	return r, nil
}
