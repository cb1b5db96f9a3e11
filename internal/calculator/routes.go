package calculator

import (
	"github.com/go-chi/chi/v5"

	"bmi-calculator/internal/session"
)

// RegisterRoutes mounts all calculator endpoints onto the given router
// under the /calculator prefix. Everything touching history runs inside a
// session.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/calculator", func(r chi.Router) {
		r.Get("/chart", h.Chart)

		r.Group(func(r chi.Router) {
			r.Use(session.Middleware)

			r.Post("/bmi", h.Calculate)
			r.Get("/history", h.History)
			r.Delete("/history", h.ResetHistory)
		})
	})
}
