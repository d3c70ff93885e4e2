package interview

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers interview routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/interviews", func(r chi.Router) {
		r.Post("/", h.StartInterview)
		r.Get("/", h.ListSessions)
		r.Get("/stats", h.GetStats)
		r.Get("/{id}", h.GetSession)
		r.Delete("/{id}", h.DeleteSession)
		r.Post("/{id}/answers", h.SubmitAnswer)
		r.Post("/{id}/complete", h.CompleteInterview)
		r.Get("/{id}/report", h.GetReport)
	})
}
