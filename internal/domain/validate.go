package domain

import (
	"strconv"
	"strings"
)

// Validate checks the structural shape of a sync request. Everything behind
// this gate may assume a non-empty browser triple and non-empty URLs, so the
// resolver and the reconciliation engine never re-validate input.
func (s *SyncRequest) Validate() error {
	if strings.TrimSpace(s.BrowserName) == "" {
		return invalid("browser_name", "must not be empty")
	}
	if strings.TrimSpace(s.DeviceName) == "" {
		return invalid("device_name", "must not be empty")
	}
	if strings.TrimSpace(s.ProfileName) == "" {
		return invalid("profile_name", "must not be empty")
	}
	for i := range s.Bookmarks {
		if s.Bookmarks[i].URL == "" {
			return invalid("bookmarks["+strconv.Itoa(i)+"].url", "must not be empty")
		}
	}
	return nil
}
