// internal/app/features/funds/routes.go
package funds

import (
	"github.com/bloodlink-dev/bloodlink/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers the fund donation routes. The list is public;
// recording a donation requires a session so the contribution is tied
// to a known identity.
func MountRoutes(r chi.Router, h *Handler, mw *auth.Middleware) {
	r.Get("/funds", h.ServeList)

	r.Group(func(r chi.Router) {
		r.Use(mw.RequireToken)
		r.Post("/funds", h.HandleCreate)
	})
}
