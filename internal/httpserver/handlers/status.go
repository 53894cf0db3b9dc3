package handlers

import (
	"net/http"

	"github.com/syncmarks/syncmarks/internal/httpserver/deps"
)

type componentStatus struct {
	OK        bool   `json:"ok"`
	Browsers  *int64 `json:"browsers,omitempty"`
	Bookmarks *int64 `json:"bookmarks,omitempty"`
	Error     string `json:"error,omitempty"`
}

type statusResponse struct {
	Components map[string]componentStatus `json:"components"`
}

// Status reports per-component health plus store counts, for dashboards and
// quick curl checks.
func Status(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store := componentStatus{OK: true}
		browsers, bookmarks, err := d.Store.Counts(r.Context())
		if err != nil {
			store.OK = false
			store.Error = "unreachable"
		} else {
			store.Browsers = &browsers
			store.Bookmarks = &bookmarks
		}

		writeJSON(w, http.StatusOK, statusResponse{
			Components: map[string]componentStatus{
				"store": store,
				"auth":  {OK: true},
			},
		})
	}
}
