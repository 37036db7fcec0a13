package handlers

import (
	"context"
	"net/http"
	"time"
)

// Root is the JSON liveness endpoint.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Consciousness Work Backend Running",
	})
}

// Hello is a static greeting used for smoke-testing deployments.
func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Hello from the backend API!",
	})
}

// TestDatabase reports backend and store status. Every failure is captured
// into the response body as a descriptive string; the request itself never
// fails.
func (h *Handler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response := map[string]interface{}{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.Cfg != nil {
		if h.Cfg.DatabaseURL != "" {
			response["database_url"] = "✅ Set"
		}
		if h.Cfg.DatabaseName != "" {
			response["database_name"] = "✅ Set"
		}
	}

	status := h.Store.DescribeConnection(ctx)
	if status.Configured {
		response["database"] = "✅ Available"
		if status.Connected {
			response["connection_status"] = "Connected"
			collections, err := h.Store.ListCollections(ctx, 10)
			if err != nil {
				response["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
			} else {
				response["collections"] = collections
				response["database"] = "✅ Connected & Working"
			}
		} else if status.Error != "" {
			response["database"] = "❌ Error: " + truncate(status.Error, 50)
		}
	}

	writeJSON(w, http.StatusOK, response)
}
