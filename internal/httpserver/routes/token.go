package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/syncmarks/syncmarks/internal/httpserver/deps"
	"github.com/syncmarks/syncmarks/internal/httpserver/handlers"
	"github.com/syncmarks/syncmarks/internal/httpserver/mw"
)

func init() { Register(registerToken) }

func registerToken(r chi.Router, d deps.Deps) {
	// Issuance trusts the socket peer only: proxy headers are never consulted
	// here, so a forwarded X-Forwarded-For cannot fake a loopback origin.
	r.With(
		mw.AllowOnlyCIDRS(d.IssueCIDRS, false, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
	).Post("/token", handlers.IssueToken(d))
}
