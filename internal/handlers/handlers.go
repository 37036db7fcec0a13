package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/consciouswork/backend/internal/config"
	"github.com/consciouswork/backend/internal/database"
	"github.com/consciouswork/backend/internal/models"
)

// Handler carries the injected store so tests can substitute an in-memory
// backend.
type Handler struct {
	Store database.Store
	Cfg   *config.Config
}

func New(store database.Store, cfg *config.Config) *Handler {
	return &Handler{Store: store, Cfg: cfg}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError translates the error taxonomy once at the API boundary:
// ValidationError → 422 with field-level detail, everything else → 500 with
// a truncated plain message.
func writeError(w http.ResponseWriter, err error) {
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"detail": ve.Errors,
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
		"detail": truncate(err.Error(), 200),
	})
}

// decodeBody reads the request body as an untyped mapping for the schema
// validators. Malformed JSON is a validation failure, not a server error.
func decodeBody(r *http.Request) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, &models.ValidationError{Errors: []models.FieldError{
			{Field: "body", Reason: "invalid JSON"},
		}}
	}
	return raw, nil
}

// parseLimit reads the limit query parameter, applying the endpoint's default
// and rejecting out-of-range values before any store call.
func parseLimit(r *http.Request, def, max int) (int64, error) {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return int64(def), nil
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		return 0, &models.ValidationError{Errors: []models.FieldError{
			{Field: "limit", Reason: "must be an integer"},
		}}
	}
	if limit < 1 || limit > max {
		return 0, &models.ValidationError{Errors: []models.FieldError{
			{Field: "limit", Reason: "must be between 1 and " + strconv.Itoa(max)},
		}}
	}
	return int64(limit), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
