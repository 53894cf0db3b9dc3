package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/syncmarks/syncmarks/internal/domain"
	"github.com/syncmarks/syncmarks/internal/httpserver/deps"
	"github.com/syncmarks/syncmarks/internal/logger"
)

type syncResponse struct {
	Status    string `json:"status"`
	Inserted  int    `json:"inserted"`
	Updated   int    `json:"updated"`
	BrowserID int64  `json:"browser_id"`
}

// SyncBookmarks accepts one batch of bookmarks from a browser instance,
// resolves the (browser, device, profile) triple to its stable id, and
// reconciles the batch against the stored rows for that id.
func SyncBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req domain.SyncRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeValidationError(w, "malformed request body")
			return
		}
		if err := req.Validate(); err != nil {
			writeValidationError(w, err.Error())
			return
		}

		browserID, err := d.Store.ResolveOrCreateBrowser(ctx, req.BrowserName, req.DeviceName, req.ProfileName)
		if err != nil {
			writeStorageError(w, d.Logger, "resolve browser", err)
			return
		}

		inserted, updated, err := d.Store.ReconcileBookmarks(ctx, browserID, req.Bookmarks)
		if err != nil {
			writeStorageError(w, d.Logger, "reconcile bookmarks", err)
			return
		}

		d.Logger.Info("bookmarks synced",
			logger.Int64("browser_id", browserID),
			logger.String("browser", req.BrowserName),
			logger.String("device", req.DeviceName),
			logger.String("profile", req.ProfileName),
			logger.Int("received", len(req.Bookmarks)),
			logger.Int("inserted", inserted),
			logger.Int("updated", updated))

		writeJSON(w, http.StatusOK, syncResponse{
			Status:    "ok",
			Inserted:  inserted,
			Updated:   updated,
			BrowserID: browserID,
		})
	}
}
