// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/media-vault/internal/config"
	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/models"
)

const testVideoURL = "https://youtu.be/dQw4w9WgXcQ"

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:3000", want: "http://localhost:3000"},
		{raw: " https://vault.example.com/ ", want: "https://vault.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestInfo_Success(t *testing.T) {
	want := models.InfoResponse{
		Success: true,
		Title:   "Never Gonna Give You Up",
		VideoID: "dQw4w9WgXcQ",
		Formats: []models.FormatSummary{{Quality: "360p", Itag: 18, Container: "mp4", Size: "Unknown size"}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/info", r.URL.Path)

		var req models.InfoRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, testVideoURL, req.URL)

		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Info(context.Background(), testVideoURL)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInfo_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    models.ErrorResponse
		wantErr error
		wantMsg string
	}{
		{
			name:    "bad request",
			status:  http.StatusBadRequest,
			body:    models.ErrorResponse{Error: "Invalid YouTube URL"},
			wantErr: ErrBadRequest,
			wantMsg: "bad request: Invalid YouTube URL",
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    models.ErrorResponse{Error: "Too many requests"},
			wantErr: ErrTooManyRequests,
		},
		{
			name:    "server failure carries message",
			status:  http.StatusInternalServerError,
			body:    models.ErrorResponse{Error: "Failed to fetch video information", Message: "private video"},
			wantErr: ErrInternalServerError,
			wantMsg: "internal server error: Failed to fetch video information: private video",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, tt.body)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Info(context.Background(), testVideoURL)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestInfo_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.requestTimeout = 20 * time.Millisecond

	_, err := a.Info(context.Background(), testVideoURL)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDownload_SavesAttachment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/download", r.URL.Path)
		assert.Equal(t, testVideoURL, r.URL.Query().Get("url"))
		assert.Equal(t, "22", r.URL.Query().Get("itag"))

		w.Header().Set("Content-Type", "video/mp4")
		w.Header().Set("Content-Disposition", `attachment; filename=Never_Gonna.mp4`)
		_, _ = w.Write([]byte("video-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	result, err := newTestAdapter(t, srv.URL).Download(context.Background(), models.DownloadRequest{URL: testVideoURL, Itag: "22"}, dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Never_Gonna.mp4"), result.Path)
	assert.Equal(t, "video/mp4", result.ContentType)
	assert.EqualValues(t, len("video-bytes"), result.Bytes)

	data, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.Equal(t, "video-bytes", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must not be left behind")
}

func TestAudio_QueryAndFallbackName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/audio", r.URL.Path)
		assert.Equal(t, "128", r.URL.Query().Get("quality"))
		_, _ = w.Write([]byte("audio"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	result, err := newTestAdapter(t, srv.URL).Audio(context.Background(), models.AudioRequest{URL: testVideoURL, Quality: "128"}, dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, fallbackDownloadName), result.Path)
}

func TestDownload_ErrorLeavesNoFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid itag"})
	}))
	defer srv.Close()

	dir := t.TempDir()
	_, err := newTestAdapter(t, srv.URL).Download(context.Background(), models.DownloadRequest{URL: testVideoURL, Itag: "x"}, dir)

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "Invalid itag")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDownload_NoItagParameter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("itag"))
		_, _ = w.Write([]byte("v"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Download(context.Background(), models.DownloadRequest{URL: testVideoURL}, t.TempDir())
	require.NoError(t, err)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.HealthResponse{Status: "OK", Timestamp: "2026-01-02T03:04:05.000Z"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "OK", got.Status)
}

func TestDownloadName(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: `attachment; filename="a b.mp4"`, want: "a b.mp4"},
		{header: `attachment; filename="../../etc/passwd"`, want: "passwd"},
		{header: `attachment; filename=".."`, want: fallbackDownloadName},
		{header: "", want: fallbackDownloadName},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, downloadName(tt.header))
		})
	}
}

func TestMapHTTPError(t *testing.T) {
	assert.NoError(t, mapHTTPError(http.StatusOK, nil))
	assert.ErrorIs(t, mapHTTPError(http.StatusNotFound, []byte(`{"success":false,"error":"Not found"}`)), ErrNotFound)
	assert.EqualError(t, mapHTTPError(http.StatusBadGateway, nil), "internal server error: Bad Gateway")
	assert.EqualError(t, mapHTTPError(http.StatusTeapot, []byte("short and stout")), "http 418: short and stout")
}
