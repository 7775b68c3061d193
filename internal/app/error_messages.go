// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// MediaVault server handlers and middleware.
//
// The Msg* constants are the summaries written into the "error" field of JSON
// error bodies. Clients match on them, so the wording is part of the API.
package app

const (
	// MsgInvalidURL is returned when the url parameter is missing or is not a
	// recognised YouTube video link.
	MsgInvalidURL = "Invalid YouTube URL"

	// MsgInvalidItag is returned when the itag query parameter is not a
	// positive integer.
	MsgInvalidItag = "Invalid itag"

	// MsgInvalidRequest is returned for other malformed requests.
	MsgInvalidRequest = "Invalid request"

	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	MsgNotFound        = "Not found"
	MsgTooManyRequests = "Too many requests"

	// MsgFetchInfoFailed is returned when video metadata cannot be obtained.
	MsgFetchInfoFailed = "Failed to fetch video information"

	// MsgDownloadFailed is returned when a video stream cannot be opened.
	MsgDownloadFailed = "Download failed"

	// MsgAudioExtractionFailed is returned when an audio stream cannot be
	// opened.
	MsgAudioExtractionFailed = "Audio extraction failed"

	// MsgInternalServerError is returned for failures no other message
	// describes.
	MsgInternalServerError = "Internal server error"
)
