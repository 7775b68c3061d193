// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/media-vault/internal/service AppInfoService,VideoService

package service

import (
	"context"

	"github.com/MKhiriev/media-vault/internal/extractor"
	"github.com/MKhiriev/media-vault/models"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Status(ctx context.Context) models.StatusResponse
	Health(ctx context.Context) models.HealthResponse
}

// VideoService turns API requests into video metadata and media streams.
type VideoService interface {
	// GetInfo returns the metadata of the video referenced by req.URL along
	// with its muxed formats.
	GetInfo(ctx context.Context, req models.InfoRequest) (models.InfoResponse, error)

	// OpenVideoStream opens the format selected by req.Itag, or the best
	// muxed format when no itag is given.
	OpenVideoStream(ctx context.Context, req models.DownloadRequest) (*models.Stream, error)

	// OpenAudioStream opens the best audio-only format, honouring
	// req.Quality as a bitrate ceiling in kbit/s when it is a number.
	OpenAudioStream(ctx context.Context, req models.AudioRequest) (*models.Stream, error)
}

// VideoServiceWrapper defines middleware composition for VideoService.
// Implementations wrap an existing VideoService to add behavior such as
// validating.
type VideoServiceWrapper interface {
	Wrap(VideoService) VideoService // returns a decorated VideoService applying additional behavior
}

// ExtractorWrapper decorates the extractor the video service reads from,
// e.g. with a metadata cache.
type ExtractorWrapper interface {
	Wrap(extractor.Extractor) extractor.Extractor
}
