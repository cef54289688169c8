// internal/app/features/donations/routes.go
package donations

import (
	"github.com/bloodlink-dev/bloodlink/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// MountRoutes registers the donation request routes.
//
// Browsing and posting requests is public so visitors can see open
// pleas and ask for blood without an account. Everything scoped to a
// requester, every mutation of an existing request, and the counts
// require a valid session; ownership checks happen in the handlers.
func MountRoutes(r chi.Router, h *Handler, mw *auth.Middleware) {
	r.Get("/all-blood-donation-requests", h.ServeListAll)
	r.Get("/blood-donation-request/{id}", h.ServeByID)
	r.Post("/blood-donation-request", h.HandleCreate)

	r.Group(func(r chi.Router) {
		r.Use(mw.RequireToken)
		r.Patch("/update-req-status/{id}", h.HandleSetStatus)
		r.Put("/update-blood-donation-request/{id}", h.HandleUpdate)
		r.Delete("/blood-donation-request-delete/{id}", h.HandleDelete)
		r.Get("/blood-donation-individual/{email}", h.ServeByRequester)
		r.Get("/all-blood-donation-request", h.ServeRequesterPage)
		r.Get("/my-bloodDonationCount/{email}", h.ServeMyCount)
		r.Get("/bloodDonationCount", h.ServeCount)
	})
}
