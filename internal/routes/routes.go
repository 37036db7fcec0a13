package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/consciouswork/backend/internal/handlers"
)

func SetupRoutes(r chi.Router, h *handlers.Handler) {
	// Liveness and diagnostics
	r.Get("/", h.Root)
	r.Get("/api/hello", h.Hello)
	r.Get("/test", h.TestDatabase)

	// Intention routes
	r.Post("/api/intentions", h.CreateIntention)
	r.Get("/api/intentions", h.ListIntentions)

	// Affirmation routes
	r.Post("/api/affirmations", h.CreateAffirmation)
	r.Get("/api/affirmations", h.ListAffirmations)

	// Session routes
	r.Post("/api/sessions", h.CreateSession)
	r.Get("/api/sessions", h.ListSessions)

	// Summary and schema introspection
	r.Get("/api/summary", h.Summary)
	r.Get("/schema", h.Schema)
}
