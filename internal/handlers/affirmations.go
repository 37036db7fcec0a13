package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/consciouswork/backend/internal/database"
	"github.com/consciouswork/backend/internal/models"
	"github.com/consciouswork/backend/internal/serialize"
)

// CreateAffirmation validates the body as an Affirmation and persists it.
func (h *Handler) CreateAffirmation(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := models.ValidateAffirmation(raw)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	doc := payload.Document()
	doc["created_at"] = time.Now().UTC()

	id, err := h.Store.CreateDocument(ctx, "affirmation", doc)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// ListAffirmations returns serialized affirmations, optionally filtered by
// tag membership.
func (h *Handler) ListAffirmations(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, 200, 1000)
	if err != nil {
		writeError(w, err)
		return
	}

	filter := database.Filter{}
	if tag := r.URL.Query().Get("tag"); tag != "" {
		filter = append(filter, database.Contains("tags", tag))
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	docs, err := h.Store.GetDocuments(ctx, "affirmation", filter, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, serialize.Documents(docs))
}
