package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/consciouswork/backend/internal/database"
	"github.com/consciouswork/backend/internal/models"
	"github.com/consciouswork/backend/internal/serialize"
)

// Summary returns per-collection counts and the most recent sessions. A
// broken or unconfigured store yields zero counts and an empty list, never
// a failed request.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	counts := map[string]int64{
		"intentions":   0,
		"affirmations": 0,
		"sessions":     0,
	}
	for key, collection := range map[string]string{
		"intentions":   "intention",
		"affirmations": "affirmation",
		"sessions":     "session",
	} {
		if n, err := h.Store.CountDocuments(ctx, collection, database.Filter{}); err == nil {
			counts[key] = n
		}
	}

	recent, err := h.Store.GetDocuments(ctx, "session", database.Filter{}, 10)
	if err != nil {
		recent = nil
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"counts":          counts,
		"recent_sessions": serialize.Documents(recent),
	})
}

// Schema exposes the three record shapes for client-side form generation.
func (h *Handler) Schema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"intention":   models.IntentionSchema(),
		"affirmation": models.AffirmationSchema(),
		"session":     models.SessionSchema(),
	})
}
