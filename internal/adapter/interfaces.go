// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the MediaVault HTTP API.
//
// [ServerAdapter] hides the REST transport from the command-line client.
// Non-2xx responses are mapped to the sentinel errors in errors.go so callers
// can use [errors.Is] (e.g. [ErrBadRequest] for 400, [ErrTooManyRequests] for
// 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/media-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a MediaVault server.
type ServerAdapter interface {
	// Info fetches video metadata and the muxed formats of videoURL.
	Info(ctx context.Context, videoURL string) (models.InfoResponse, error)

	// Download streams a video rendition into dir, naming the file after the
	// server-provided attachment name.
	Download(ctx context.Context, req models.DownloadRequest, dir string) (models.DownloadResult, error)

	// Audio streams the audio track into dir like Download.
	Audio(ctx context.Context, req models.AudioRequest, dir string) (models.DownloadResult, error)

	// Health reports the server liveness status.
	Health(ctx context.Context) (models.HealthResponse, error)
}
