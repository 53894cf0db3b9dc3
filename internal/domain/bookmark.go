package domain

// BookmarkRecord is one incoming bookmark as reported by a browser extension.
// CreatedAt is an opaque client-side timestamp; the server stores it verbatim
// and never parses it. A nil CreatedAt means the client did not report one.
type BookmarkRecord struct {
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	FolderPath string  `json:"folder_path"`
	CreatedAt  *string `json:"created_at"`
}

// SyncRequest is the payload of a bookmark sync call: the browser triple that
// identifies the sync source plus the ordered batch of records to reconcile.
type SyncRequest struct {
	BrowserName string           `json:"browser_name"`
	DeviceName  string           `json:"device_name"`
	ProfileName string           `json:"profile_name"`
	Bookmarks   []BookmarkRecord `json:"bookmarks"`
}

// BookmarkView is one row of the flattened read projection: a stored bookmark
// joined with the browser that owns it.
type BookmarkView struct {
	ID          int64   `json:"id"`
	BrowserName string  `json:"browser_name"`
	DeviceName  string  `json:"device_name"`
	ProfileName string  `json:"profile_name"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	FolderPath  string  `json:"folder_path"`
	CreatedAt   *string `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
