package resume

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers resume routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/resume", func(r chi.Router) {
		r.Post("/parse", h.Parse)
	})
}
