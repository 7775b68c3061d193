// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extractor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/media-vault/internal/config"
	"github.com/MKhiriev/media-vault/internal/formats"
	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/internal/utils"
	"github.com/MKhiriev/media-vault/models"
	"github.com/kkdai/youtube/v2"
	"github.com/rs/zerolog"
)

const (
	operationInfo   = "info"
	operationStream = "stream"
)

type youtubeExtractor struct {
	client   youtubeClient
	timeout  time.Duration
	observer Observer
	logger   *logger.Logger
}

// Option customizes the extractor built by NewYouTubeExtractor.
type Option func(*youtubeExtractor)

// WithObserver reports the duration of every library call to o.
func WithObserver(o Observer) Option {
	return func(e *youtubeExtractor) {
		if o != nil {
			e.observer = o
		}
	}
}

// withClient replaces the library client, used by tests.
func withClient(c youtubeClient) Option {
	return func(e *youtubeExtractor) {
		e.client = c
	}
}

// NewYouTubeExtractor builds an Extractor backed by github.com/kkdai/youtube.
// Outbound requests share one resty-managed HTTP client, routed through
// cfg.ProxyURL when set.
func NewYouTubeExtractor(cfg config.Extractor, log *logger.Logger, opts ...Option) Extractor {
	httpClient := utils.NewHTTPClient(utils.WithProxy(cfg.ProxyURL))

	e := &youtubeExtractor{
		client:   &youtube.Client{HTTPClient: httpClient.GetClient()},
		timeout:  cfg.Timeout,
		observer: nopObserver{},
		logger:   log,
	}
	for _, opt := range opts {
		opt(e)
	}

	log.Info().
		Dur("timeout", cfg.Timeout).
		Bool("proxy", cfg.ProxyURL != "").
		Msg("youtube extractor configured")

	return e
}

func (e *youtubeExtractor) GetInfo(ctx context.Context, videoID string) (models.VideoInfo, error) {
	video, err := e.fetchVideo(ctx, videoID)
	if err != nil {
		return models.VideoInfo{}, err
	}
	return toVideoInfo(video), nil
}

func (e *youtubeExtractor) OpenStream(ctx context.Context, videoID string, opts models.StreamOptions) (*models.Stream, error) {
	log := e.log(ctx)

	video, err := e.fetchVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	info := toVideoInfo(video)
	chosen, err := formats.Choose(info.Formats, opts)
	if err != nil {
		log.Debug().Err(err).
			Str("video_id", videoID).
			Str("quality", opts.Quality).
			Str("filter", opts.Filter).
			Msg("no format matches the request")
		return nil, fmt.Errorf("%w: %w", ErrChoosingFormat, err)
	}

	format := findFormat(video, chosen.Itag)
	if format == nil {
		return nil, fmt.Errorf("%w: itag %d", ErrFormatNotFound, chosen.Itag)
	}

	// the stream is bound to ctx only, the lookup timeout must not cut it
	start := time.Now()
	body, size, err := e.client.GetStreamContext(ctx, video, format)
	e.observer.ObserveExtraction(operationStream, err, time.Since(start))
	if err != nil {
		log.Error().Err(err).Str("video_id", videoID).Int("itag", chosen.Itag).Msg("error opening stream")
		return nil, fmt.Errorf("%w: %w", ErrOpeningStream, err)
	}

	if size <= 0 {
		size = chosen.ContentLength
	}

	log.Info().
		Str("video_id", videoID).
		Int("itag", chosen.Itag).
		Str("mime_type", chosen.MimeType).
		Int64("size", size).
		Msg("stream opened")

	return &models.Stream{
		Body:    body,
		Size:    size,
		Format:  chosen,
		VideoID: video.ID,
		Title:   video.Title,
	}, nil
}

// fetchVideo looks the video up under the configured timeout.
func (e *youtubeExtractor) fetchVideo(ctx context.Context, videoID string) (*youtube.Video, error) {
	lookupCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	video, err := e.client.GetVideoContext(lookupCtx, videoID)
	e.observer.ObserveExtraction(operationInfo, err, time.Since(start))
	if err != nil {
		e.log(ctx).Error().Err(err).Str("video_id", videoID).Msg("error fetching video info")
		return nil, classify(err)
	}

	return video, nil
}

// classify wraps library errors into the package sentinels so callers never
// match on library types.
func classify(err error) error {
	var playability *youtube.ErrPlayabiltyStatus
	switch {
	case errors.Is(err, youtube.ErrVideoPrivate),
		errors.Is(err, youtube.ErrLoginRequired),
		errors.Is(err, youtube.ErrNotPlayableInEmbed),
		errors.As(err, &playability):
		return fmt.Errorf("%w: %w", ErrVideoUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrFetchingInfo, err)
	}
}

// log prefers the request-scoped logger carried by ctx.
func (e *youtubeExtractor) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return e.logger
}

type nopObserver struct{}

func (nopObserver) ObserveExtraction(string, error, time.Duration) {}
