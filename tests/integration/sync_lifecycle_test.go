package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syncmarks/syncmarks/internal/auth"
	"github.com/syncmarks/syncmarks/internal/config"
	"github.com/syncmarks/syncmarks/internal/httpserver"
	"github.com/syncmarks/syncmarks/internal/httpserver/deps"
	"github.com/syncmarks/syncmarks/internal/logger"
	"github.com/syncmarks/syncmarks/internal/store/sqlite"
)

func startServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "syncmarks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	authService, err := auth.New(store, 128, time.Hour)
	require.NoError(t, err)

	log := logger.New("error", false)
	cfg := &config.Config{
		CORSOrigins:      []string{"*"},
		RateBurst:        1000,
		RateRefillPerMin: 1000,
	}
	d := deps.Deps{
		Logger:     log,
		StartTime:  time.Now(),
		Store:      store,
		Auth:       authService,
		IssueCIDRS: []string{"127.0.0.1/32", "::1/128"},
	}

	srv := httptest.NewServer(httpserver.NewRouter(cfg, log, d))
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, method, url, token string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func obtainToken(t *testing.T, baseURL string) string {
	t.Helper()
	status, body := call(t, http.MethodPost, baseURL+"/api/token", "", nil)
	require.Equal(t, http.StatusOK, status)

	var resp struct {
		Token     string `json:"token"`
		ExpiresIn int    `json:"expires_in"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Token, 64)
	require.Positive(t, resp.ExpiresIn)
	return resp.Token
}

type syncPayload struct {
	BrowserName string           `json:"browser_name"`
	DeviceName  string           `json:"device_name"`
	ProfileName string           `json:"profile_name"`
	Bookmarks   []map[string]any `json:"bookmarks"`
}

func TestAuthOverHTTP(t *testing.T) {
	srv := startServer(t)

	t.Run("no token", func(t *testing.T) {
		status, _ := call(t, http.MethodGet, srv.URL+"/api/bookmarks", "", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("invalid token", func(t *testing.T) {
		status, _ := call(t, http.MethodGet, srv.URL+"/api/bookmarks", "invalid_token_123", nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("valid token", func(t *testing.T) {
		token := obtainToken(t, srv.URL)
		status, _ := call(t, http.MethodGet, srv.URL+"/api/bookmarks", token, nil)
		assert.Equal(t, http.StatusOK, status)
	})
}

func TestMultiDeviceMerge(t *testing.T) {
	srv := startServer(t)
	token := obtainToken(t, srv.URL)

	// Laptop reports two bookmarks.
	status, body := call(t, http.MethodPost, srv.URL+"/api/sync/bookmarks", token, syncPayload{
		BrowserName: "chrome", DeviceName: "laptop", ProfileName: "default",
		Bookmarks: []map[string]any{
			{"url": "http://a.com", "title": "A"},
			{"url": "http://b.com", "title": "B", "folder_path": "/work"},
		},
	})
	require.Equal(t, http.StatusOK, status)

	var result struct {
		Inserted  int   `json:"inserted"`
		Updated   int   `json:"updated"`
		BrowserID int64 `json:"browser_id"`
	}
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 0, result.Updated)
	laptopID := result.BrowserID

	// Desktop reports an overlapping URL: a distinct identity, so a new row.
	status, body = call(t, http.MethodPost, srv.URL+"/api/sync/bookmarks", token, syncPayload{
		BrowserName: "chrome", DeviceName: "desktop", ProfileName: "default",
		Bookmarks: []map[string]any{
			{"url": "http://a.com", "title": "A from desktop"},
		},
	})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 1, result.Inserted)
	assert.NotEqual(t, laptopID, result.BrowserID)

	// Laptop re-syncs with a renamed title: update, same identity.
	status, body = call(t, http.MethodPost, srv.URL+"/api/sync/bookmarks", token, syncPayload{
		BrowserName: "chrome", DeviceName: "laptop", ProfileName: "default",
		Bookmarks: []map[string]any{
			{"url": "http://a.com", "title": "A renamed"},
		},
	})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, laptopID, result.BrowserID)

	// The merged view holds three rows, most recently synced first.
	status, body = call(t, http.MethodGet, srv.URL+"/api/bookmarks", token, nil)
	require.Equal(t, http.StatusOK, status)

	var views []struct {
		BrowserName string `json:"browser_name"`
		DeviceName  string `json:"device_name"`
		Title       string `json:"title"`
		URL         string `json:"url"`
		FolderPath  string `json:"folder_path"`
	}
	require.NoError(t, json.Unmarshal(body, &views))
	require.Len(t, views, 3)
	assert.Equal(t, "A renamed", views[0].Title)
	assert.Equal(t, "laptop", views[0].DeviceName)
}

func TestTokenSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "syncmarks.db")

	store, err := sqlite.Open(dbPath)
	require.NoError(t, err)
	first, err := auth.New(store, 128, time.Hour)
	require.NoError(t, err)

	token, err := first.Issue(context.Background())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// A fresh process with a cold cache must still honor the token.
	store, err = sqlite.Open(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	second, err := auth.New(store, 128, time.Hour)
	require.NoError(t, err)

	assert.True(t, second.Verify(context.Background(), token))
	assert.False(t, second.Verify(context.Background(), "garbage"))
}
