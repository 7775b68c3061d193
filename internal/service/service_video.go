// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/media-vault/internal/config"
	"github.com/MKhiriev/media-vault/internal/extractor"
	"github.com/MKhiriev/media-vault/internal/formats"
	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/internal/utils"
	"github.com/MKhiriev/media-vault/internal/validators"
	"github.com/MKhiriev/media-vault/models"
)

const (
	unknownQuality = "Unknown"
	unknownSize    = "Unknown size"
	bytesPerMB     = 1024 * 1024
)

type videoService struct {
	extractor        extractor.Extractor
	formatsLimit     int
	descriptionLimit int

	logger *logger.Logger
}

func NewVideoService(ext extractor.Extractor, cfg config.App, logger *logger.Logger) VideoService {
	return &videoService{
		extractor:        ext,
		formatsLimit:     cfg.InfoFormatsLimit,
		descriptionLimit: cfg.DescriptionLimit,
		logger:           logger,
	}
}

func (s *videoService) GetInfo(ctx context.Context, req models.InfoRequest) (models.InfoResponse, error) {
	videoID, err := validators.ExtractVideoID(req.URL)
	if err != nil {
		return models.InfoResponse{}, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	info, err := s.extractor.GetInfo(ctx, videoID)
	if err != nil {
		return models.InfoResponse{}, fmt.Errorf("%w: %w", ErrFetchingInfo, err)
	}

	if info.ID == "" {
		info.ID = videoID
	}
	return s.toInfoResponse(info), nil
}

func (s *videoService) OpenVideoStream(ctx context.Context, req models.DownloadRequest) (*models.Stream, error) {
	videoID, err := validators.ExtractVideoID(req.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	itag, err := validators.ParseItag(req.Itag)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidItag, err)
	}

	opts := models.StreamOptions{Quality: formats.QualityHighest, Filter: formats.FilterAudioAndVideo}
	if itag > 0 {
		// an explicit itag may name any rendition, muxed or not
		opts = models.StreamOptions{Quality: strconv.Itoa(itag)}
	}

	stream, err := s.extractor.OpenStream(ctx, videoID, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}

	stream.Filename = utils.AttachmentFilename(stream.Title, stream.Format.Extension())
	return stream, nil
}

func (s *videoService) OpenAudioStream(ctx context.Context, req models.AudioRequest) (*models.Stream, error) {
	videoID, err := validators.ExtractVideoID(req.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	opts := models.StreamOptions{
		Quality:         formats.QualityHighestAudio,
		Filter:          formats.FilterAudioOnly,
		MaxAudioBitrate: s.parseAudioQuality(ctx, req.Quality),
	}

	stream, err := s.extractor.OpenStream(ctx, videoID, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAudioExtraction, err)
	}

	stream.Filename = utils.AttachmentFilename(stream.Title, stream.Format.Extension())
	return stream, nil
}

// parseAudioQuality reads the requested bitrate ceiling. Anything but a
// positive integer means no ceiling.
func (s *videoService) parseAudioQuality(ctx context.Context, quality string) int {
	if quality == "" {
		return 0
	}

	kbps, err := strconv.Atoi(quality)
	if err != nil || kbps <= 0 {
		logger.FromContext(ctx).Warn().Str("quality", quality).Msg("ignoring audio quality that is not a positive bitrate")
		return 0
	}
	return kbps
}

func (s *videoService) toInfoResponse(info models.VideoInfo) models.InfoResponse {
	resp := models.InfoResponse{
		Success:     true,
		Title:       info.Title,
		Duration:    strconv.FormatInt(int64(info.Duration.Seconds()), 10),
		Author:      info.Author,
		VideoID:     info.ID,
		Description: truncateRunes(info.Description, s.descriptionLimit),
		ViewCount:   strconv.Itoa(info.Views),
		Formats:     []models.FormatSummary{},
	}

	if n := len(info.Thumbnails); n > 0 {
		resp.Thumbnail = info.Thumbnails[n-1].URL
	}

	muxed := formats.Muxed(info.Formats)
	if s.formatsLimit > 0 && len(muxed) > s.formatsLimit {
		muxed = muxed[:s.formatsLimit]
	}
	for _, f := range muxed {
		resp.Formats = append(resp.Formats, toFormatSummary(f))
	}

	return resp
}

func toFormatSummary(f models.Format) models.FormatSummary {
	quality := f.QualityLabel
	if quality == "" {
		quality = unknownQuality
	}

	size := unknownSize
	if f.ContentLength > 0 {
		size = fmt.Sprintf("%.2f MB", float64(f.ContentLength)/bytesPerMB)
	}

	return models.FormatSummary{
		Quality:   quality,
		Itag:      f.Itag,
		Container: f.Container,
		Codecs:    f.Codecs,
		Size:      size,
	}
}

// truncateRunes keeps the first limit characters of s. A non-positive limit
// keeps everything.
func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
