package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/consciouswork/backend/internal/database"
	"github.com/consciouswork/backend/internal/models"
	"github.com/consciouswork/backend/internal/serialize"
)

// CreateSession validates the body as a Session and persists it. The
// intention_id reference is stored as-is, without an existence check.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := models.ValidateSession(raw)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	doc := payload.Document()
	doc["created_at"] = time.Now().UTC()

	id, err := h.Store.CreateDocument(ctx, "session", doc)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// ListSessions returns serialized sessions. No filter fields are exposed.
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, 50, 500)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	docs, err := h.Store.GetDocuments(ctx, "session", database.Filter{}, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, serialize.Documents(docs))
}
