// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// VideoInfo is the extraction-library independent description of a video.
// It is produced by the extractor and is the unit stored in the info cache.
type VideoInfo struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Author      string        `json:"author"`
	Duration    time.Duration `json:"duration"`
	Views       int           `json:"views"`
	Thumbnails  []Thumbnail   `json:"thumbnails"`
	Formats     []Format      `json:"formats"`
}

// Thumbnail is a single preview image. The extractor keeps the order of the
// upstream list, smallest first.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  uint   `json:"width"`
	Height uint   `json:"height"`
}

// Format describes one downloadable rendition of a video.
type Format struct {
	// Itag is YouTube's numeric format identifier.
	Itag int `json:"itag"`

	// MimeType is the full MIME type including the codecs parameter,
	// e.g. `video/mp4; codecs="avc1.64001F, mp4a.40.2"`.
	MimeType string `json:"mime_type"`

	// Container is the MIME subtype ("mp4", "webm", ...).
	Container string `json:"container"`

	// Codecs is the unquoted codecs parameter of MimeType.
	Codecs string `json:"codecs"`

	// QualityLabel is the human readable video quality ("720p60"). Empty for
	// audio-only formats.
	QualityLabel string `json:"quality_label"`

	// AudioQuality is YouTube's audio quality class (AUDIO_QUALITY_MEDIUM...).
	AudioQuality string `json:"audio_quality"`

	// Bitrate is the peak bitrate of the whole format in bits per second.
	Bitrate int `json:"bitrate"`

	// AudioBitrate is the audio bitrate in kbit/s, zero when the format has
	// no audio track.
	AudioBitrate int `json:"audio_bitrate"`

	Width         int   `json:"width"`
	Height        int   `json:"height"`
	FPS           int   `json:"fps"`
	AudioChannels int   `json:"audio_channels"`
	ContentLength int64 `json:"content_length"`

	HasVideo bool `json:"has_video"`
	HasAudio bool `json:"has_audio"`
}

// BaseMimeType returns MimeType without parameters ("video/mp4").
func (f Format) BaseMimeType() string {
	base, _, _ := strings.Cut(f.MimeType, ";")
	return strings.TrimSpace(base)
}

// Extension is the file extension offered for a download of f. Audio-only
// MP4 is served as "m4a", everything else uses its container name.
func (f Format) Extension() string {
	switch f.BaseMimeType() {
	case "audio/mp4":
		return "m4a"
	case "video/3gpp":
		return "3gp"
	}
	if f.Container != "" {
		return f.Container
	}
	_, subtype, ok := strings.Cut(f.BaseMimeType(), "/")
	if !ok {
		return ""
	}
	return subtype
}
