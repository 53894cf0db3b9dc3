package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/syncmarks/syncmarks/internal/httpserver/deps"
	"github.com/syncmarks/syncmarks/internal/httpserver/handlers"
	"github.com/syncmarks/syncmarks/internal/httpserver/mw"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		mw.RequireToken(d.Auth.Verify, d.Logger),
	).Get("/bookmarks", handlers.ListBookmarks(d))
}
