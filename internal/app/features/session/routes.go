// internal/app/features/session/routes.go
package session

import "github.com/go-chi/chi/v5"

// MountRoutes registers POST /jwt on the supplied router. The route is
// public: it is how clients obtain a session token in the first place.
func MountRoutes(r chi.Router, h *Handler) {
	r.Post("/jwt", h.HandleIssue)
}
