package mw

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the browser extension to call the API from extension origins.
// Defaults to permissive ("*") like the original deployment; tighten via
// config when exposing the server beyond localhost.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Auth-Token"},
		MaxAge:         300,
	})
}
