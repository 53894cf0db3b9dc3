package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SyncRequest
		wantErr string
	}{
		{
			name: "valid request",
			req: SyncRequest{
				BrowserName: "chrome",
				DeviceName:  "laptop",
				ProfileName: "default",
				Bookmarks:   []BookmarkRecord{{URL: "http://a.com", Title: "A"}},
			},
		},
		{
			name: "empty batch is valid",
			req: SyncRequest{
				BrowserName: "chrome",
				DeviceName:  "laptop",
				ProfileName: "default",
			},
		},
		{
			name:    "missing browser name",
			req:     SyncRequest{DeviceName: "laptop", ProfileName: "default"},
			wantErr: "browser_name: must not be empty",
		},
		{
			name:    "whitespace device name",
			req:     SyncRequest{BrowserName: "chrome", DeviceName: "   ", ProfileName: "default"},
			wantErr: "device_name: must not be empty",
		},
		{
			name:    "missing profile name",
			req:     SyncRequest{BrowserName: "chrome", DeviceName: "laptop"},
			wantErr: "profile_name: must not be empty",
		},
		{
			name: "record without url",
			req: SyncRequest{
				BrowserName: "chrome",
				DeviceName:  "laptop",
				ProfileName: "default",
				Bookmarks: []BookmarkRecord{
					{URL: "http://a.com"},
					{Title: "no url"},
				},
			},
			wantErr: "bookmarks[1].url: must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestSyncRequestDecoding(t *testing.T) {
	t.Run("absent optional fields default to empty", func(t *testing.T) {
		var req SyncRequest
		body := `{"browser_name":"chrome","device_name":"laptop","profile_name":"default",
			"bookmarks":[{"url":"http://a.com"}]}`
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		require.Len(t, req.Bookmarks, 1)
		assert.Equal(t, "", req.Bookmarks[0].Title)
		assert.Equal(t, "", req.Bookmarks[0].FolderPath)
		assert.Nil(t, req.Bookmarks[0].CreatedAt)
	})

	t.Run("non-string optional field is rejected at decode time", func(t *testing.T) {
		var req SyncRequest
		body := `{"browser_name":"chrome","device_name":"laptop","profile_name":"default",
			"bookmarks":[{"url":"http://a.com","title":42}]}`
		err := json.Unmarshal([]byte(body), &req)
		var typeErr *json.UnmarshalTypeError
		require.ErrorAs(t, err, &typeErr)
	})

	t.Run("null created_at stays nil", func(t *testing.T) {
		var req SyncRequest
		body := `{"browser_name":"c","device_name":"d","profile_name":"p",
			"bookmarks":[{"url":"http://a.com","created_at":null}]}`
		require.NoError(t, json.Unmarshal([]byte(body), &req))
		assert.Nil(t, req.Bookmarks[0].CreatedAt)
	})
}
