// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidURL     = errors.New("invalid YouTube URL")
	ErrInvalidItag    = errors.New("invalid itag")
	ErrInvalidRequest = errors.New("invalid request")

	ErrFetchingInfo    = errors.New("failed to fetch video information")
	ErrDownloadFailed  = errors.New("download failed")
	ErrAudioExtraction = errors.New("audio extraction failed")
)
