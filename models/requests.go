// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InfoRequest is the JSON body of POST /api/info.
type InfoRequest struct {
	URL string `json:"url"`
}

// DownloadRequest carries the query parameters of GET /api/download.
// Itag is kept as received; an empty value selects the best muxed format.
type DownloadRequest struct {
	URL  string
	Itag string
}

// AudioRequest carries the query parameters of GET /api/audio.
// Quality is a target audio bitrate in kbit/s.
type AudioRequest struct {
	URL     string
	Quality string
}

// StreamOptions tells the extractor which format to open.
type StreamOptions struct {
	// Quality is one of the quality keywords understood by the formats
	// package ("highest", "highestaudio", ...) or a decimal itag.
	Quality string

	// Filter restricts the candidate formats ("audioandvideo", "audioonly", ...).
	// Empty means no restriction.
	Filter string

	// MaxAudioBitrate, when positive, prefers the best audio format whose
	// bitrate does not exceed it (kbit/s).
	MaxAudioBitrate int
}
