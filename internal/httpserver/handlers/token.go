package handlers

import (
	"net/http"

	"github.com/syncmarks/syncmarks/internal/httpserver/deps"
	"github.com/syncmarks/syncmarks/internal/logger"
	"github.com/syncmarks/syncmarks/internal/utils"
)

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// IssueToken mints a new bearer token. The route itself requires no
// credential; it is reachable only from the issue allowlist (loopback by
// default), which is the deployment-level control protecting issuance. The
// plaintext in the response is the only copy that will ever exist; it is
// never logged and never stored.
func IssueToken(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := d.Auth.Issue(r.Context())
		if err != nil {
			writeStorageError(w, d.Logger, "issue token", err)
			return
		}

		d.Logger.Info("token issued",
			logger.String("remote_ip", utils.ParseHostNoPort(r.RemoteAddr)))

		writeJSON(w, http.StatusOK, tokenResponse{
			Token:     token,
			ExpiresIn: int(d.Auth.TTL().Seconds()),
		})
	}
}
