// internal/app/features/featured/routes.go
package featured

import "github.com/go-chi/chi/v5"

// MountRoutes registers GET /featured. Featured content is public
// landing-page material, so no auth middleware applies.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/featured", h.ServeList)
}
