package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows any origin, method, and header, with credentials. The wildcard
// cannot be sent literally alongside credentials, so the request origin is
// echoed back instead.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			return true
		},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
