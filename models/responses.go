// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InfoResponse is the body returned by POST /api/info.
type InfoResponse struct {
	Success     bool            `json:"success"`
	Title       string          `json:"title"`
	Duration    string          `json:"duration"`
	Thumbnail   string          `json:"thumbnail"`
	Author      string          `json:"author"`
	VideoID     string          `json:"videoId"`
	Description string          `json:"description"`
	ViewCount   string          `json:"viewCount"`
	Formats     []FormatSummary `json:"formats"`
}

// FormatSummary is a muxed format as presented to API callers.
type FormatSummary struct {
	Quality   string `json:"quality"`
	Itag      int    `json:"itag"`
	Container string `json:"container"`
	Codecs    string `json:"codecs"`
	Size      string `json:"size"`
}

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// StatusResponse is returned by the root endpoint.
type StatusResponse struct {
	Status    string            `json:"status"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
