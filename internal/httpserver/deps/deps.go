package deps

import (
	"time"

	"github.com/syncmarks/syncmarks/internal/auth"
	"github.com/syncmarks/syncmarks/internal/logger"
	"github.com/syncmarks/syncmarks/internal/store/sqlite"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Store *sqlite.Store // serialized SQLite store (browsers, bookmarks, tokens)
	Auth  *auth.Service // token issuance and verification

	AllowedHosts []string // Host headers allowed to access the server
	AllowedCIDRS []string // IPs allowed to access the API (empty = no filter)
	IssueCIDRS   []string // IPs allowed to request tokens (loopback by default)
	TrustProxy   bool     // true if running behind a trusted reverse proxy
}
