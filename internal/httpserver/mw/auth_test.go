package mw

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syncmarks/syncmarks/internal/logger"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "authorization bearer",
			headers: map[string]string{"Authorization": "Bearer abc123"},
			want:    "abc123",
		},
		{
			name:    "legacy x-auth-token",
			headers: map[string]string{"X-Auth-Token": "abc123"},
			want:    "abc123",
		},
		{
			name: "authorization wins over legacy header",
			headers: map[string]string{
				"Authorization": "Bearer primary",
				"X-Auth-Token":  "secondary",
			},
			want: "primary",
		},
		{
			name:    "non-bearer authorization falls back",
			headers: map[string]string{"Authorization": "Basic dXNlcg==", "X-Auth-Token": "tok"},
			want:    "tok",
		},
		{
			name: "no credential",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, BearerToken(r))
		})
	}
}

func TestRequireToken(t *testing.T) {
	log := logger.New("error", false)
	verify := func(_ context.Context, candidate string) bool { return candidate == "valid" }

	handler := RequireToken(verify, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token passes", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
		r.Header.Set("X-Auth-Token", "valid")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
		r.Header.Set("X-Auth-Token", "wrong")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
	})

	t.Run("missing token rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/bookmarks", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
