package mw

import (
	"context"
	"net/http"
	"strings"

	"github.com/syncmarks/syncmarks/internal/logger"
)

// RequireToken gates a route behind bearer-token verification. The credential
// is read from "Authorization: Bearer <token>" or, for the browser extension,
// the legacy "X-Auth-Token" header. Missing, malformed, and unverifiable
// tokens are all rejected with the same 401.
func RequireToken(verify func(ctx context.Context, candidate string) bool, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !verify(r.Context(), BearerToken(r)) {
				log.Debug("request rejected: invalid or missing token",
					logger.String("path", r.URL.Path),
					logger.String("remote_ip", r.RemoteAddr))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}` + "\n"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// BearerToken extracts the credential from a request: the Authorization
// header's Bearer value, falling back to X-Auth-Token. Empty when absent.
func BearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return strings.TrimSpace(r.Header.Get("X-Auth-Token"))
}
