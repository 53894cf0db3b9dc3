package handlers

import (
	"net/http"

	"github.com/syncmarks/syncmarks/internal/httpserver/deps"
)

// ListBookmarks returns every stored bookmark joined with its owning browser,
// most recently synced first.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := d.Store.ListBookmarks(r.Context())
		if err != nil {
			writeStorageError(w, d.Logger, "list bookmarks", err)
			return
		}
		writeJSON(w, http.StatusOK, views)
	}
}
