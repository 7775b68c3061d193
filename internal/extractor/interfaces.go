// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/extractor_mock.go -package=mock

// Package extractor is the boundary between the application and the YouTube
// extraction library.
//
// It hides page and player parsing, signature deciphering and playback URL
// resolution behind a small interface that speaks the application models,
// so the service layer never sees library types.
package extractor

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/media-vault/models"
	"github.com/kkdai/youtube/v2"
)

// Extractor resolves video metadata and opens media streams.
type Extractor interface {
	// GetInfo fetches the metadata and the format list of a video.
	GetInfo(ctx context.Context, videoID string) (models.VideoInfo, error)

	// OpenStream chooses a format according to opts and opens it. The
	// caller must close the returned stream body. The stream stays bound
	// to ctx, so cancelling ctx aborts the transfer.
	OpenStream(ctx context.Context, videoID string, opts models.StreamOptions) (*models.Stream, error)
}

// youtubeClient is the subset of *youtube.Client the extractor relies on.
type youtubeClient interface {
	GetVideoContext(ctx context.Context, id string) (*youtube.Video, error)
	GetStreamContext(ctx context.Context, video *youtube.Video, format *youtube.Format) (io.ReadCloser, int64, error)
}

// Observer receives the duration and outcome of every library call.
// *metrics.Metrics implements it.
type Observer interface {
	ObserveExtraction(operation string, err error, elapsed time.Duration)
}
