// internal/app/features/users/routes.go
package users

import (
	"github.com/bloodlink-dev/bloodlink/internal/app/system/auth"
	"github.com/bloodlink-dev/bloodlink/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers the user routes.
//
// Signup and the by-email lookups are public (the client needs them
// before a session exists). Status/role mutation and the full listing
// are admin-gated; the count requires any valid session.
func MountRoutes(r chi.Router, h *Handler, mw *auth.Middleware) {
	r.Post("/users", h.HandleCreate)
	r.Get("/user-role/{email}", h.ServeByEmail)
	r.Get("/user-status/{email}", h.ServeByEmail)

	r.Group(func(r chi.Router) {
		r.Use(mw.RequireToken, mw.RequireRole(models.RoleAdmin))
		r.Patch("/update-user-status/{id}", h.HandleUpdateStatus)
		r.Patch("/update-user-role/{id}", h.HandleUpdateRole)
		r.Get("/all-users", h.ServeList)
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.RequireToken)
		r.Get("/usersCount", h.ServeCount)
	})
}
