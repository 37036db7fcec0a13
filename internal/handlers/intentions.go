package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/consciouswork/backend/internal/database"
	"github.com/consciouswork/backend/internal/models"
	"github.com/consciouswork/backend/internal/serialize"
)

// CreateIntention validates the body as an Intention and persists it.
func (h *Handler) CreateIntention(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	payload, err := models.ValidateIntention(raw)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	doc := payload.Document()
	doc["created_at"] = time.Now().UTC()

	id, err := h.Store.CreateDocument(ctx, "intention", doc)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// ListIntentions returns serialized intentions, optionally filtered by the
// active query parameter.
func (h *Handler) ListIntentions(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, 100, 500)
	if err != nil {
		writeError(w, err)
		return
	}

	filter := database.Filter{}
	if activeStr := r.URL.Query().Get("active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			writeError(w, &models.ValidationError{Errors: []models.FieldError{
				{Field: "active", Reason: "must be a boolean"},
			}})
			return
		}
		filter = append(filter, database.Eq("is_active", active))
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	docs, err := h.Store.GetDocuments(ctx, "intention", filter, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, serialize.Documents(docs))
}
