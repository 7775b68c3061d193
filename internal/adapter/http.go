// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/media-vault/internal/config"
	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/internal/utils"
	"github.com/MKhiriev/media-vault/models"
)

// maxErrorBody caps how much of a failed stream response is read.
const maxErrorBody = 64 << 10

const fallbackDownloadName = "download"

type httpServerAdapter struct {
	// client has no overall timeout: media streams run as long as they need.
	// Metadata calls are bounded by requestTimeout through their context.
	client         *utils.HTTPClient
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The base URL comes from cfg.HTTPAddress; a bare host:port gets an http
// scheme.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithUserAgent("media-vault-client"),
	)

	return &httpServerAdapter{client: client, requestTimeout: cfg.RequestTimeout, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Info(ctx context.Context, videoURL string) (models.InfoResponse, error) {
	ctx, cancel := h.withRequestTimeout(ctx)
	defer cancel()

	var info models.InfoResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.InfoRequest{URL: videoURL}).
		SetResult(&info).
		Post("/api/info")
	if err != nil {
		return models.InfoResponse{}, fmt.Errorf("info request: %w", err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return models.InfoResponse{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) Download(ctx context.Context, req models.DownloadRequest, dir string) (models.DownloadResult, error) {
	params := map[string]string{"url": req.URL}
	if req.Itag != "" {
		params["itag"] = req.Itag
	}
	return h.saveStream(ctx, "/api/download", params, dir)
}

func (h *httpServerAdapter) Audio(ctx context.Context, req models.AudioRequest, dir string) (models.DownloadResult, error) {
	params := map[string]string{"url": req.URL}
	if req.Quality != "" {
		params["quality"] = req.Quality
	}
	return h.saveStream(ctx, "/api/audio", params, dir)
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	ctx, cancel := h.withRequestTimeout(ctx)
	defer cancel()

	var health models.HealthResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp.StatusCode(), resp.Body()); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

// saveStream downloads an attachment into dir. The body goes to a temporary
// file first and is renamed once complete, so an interrupted download never
// leaves a file under the final name.
func (h *httpServerAdapter) saveStream(ctx context.Context, path string, params map[string]string, dir string) (models.DownloadResult, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetDoNotParseResponse(true).
		Get(path)
	if err != nil {
		return models.DownloadResult{}, fmt.Errorf("stream request: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if !resp.IsSuccess() {
		errBody, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
		return models.DownloadResult{}, mapHTTPError(resp.StatusCode(), errBody)
	}

	name := downloadName(resp.Header().Get("Content-Disposition"))
	tmp, err := os.CreateTemp(dir, ".media-vault-*.part")
	if err != nil {
		return models.DownloadResult{}, fmt.Errorf("create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	written, copyErr := io.Copy(tmp, body)
	closeErr := tmp.Close()
	if err = errors.Join(copyErr, closeErr); err != nil {
		return models.DownloadResult{}, fmt.Errorf("save %s: %w", name, err)
	}

	target := filepath.Join(dir, name)
	if err = os.Rename(tmp.Name(), target); err != nil {
		return models.DownloadResult{}, fmt.Errorf("save %s: %w", name, err)
	}

	h.logger.Info().Str("path", target).Int64("bytes", written).Msg("download saved")
	return models.DownloadResult{
		Path:        target,
		ContentType: resp.Header().Get("Content-Type"),
		Bytes:       written,
	}, nil
}

func (h *httpServerAdapter) withRequestTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.requestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.requestTimeout)
}

// downloadName returns the attachment file name without any directory part.
func downloadName(disposition string) string {
	name := filepath.Base(utils.FilenameFromDisposition(disposition))
	switch name {
	case "", ".", "..", string(filepath.Separator):
		return fallbackDownloadName
	}
	return name
}
