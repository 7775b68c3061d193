// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extractor

import "errors"

var (
	ErrVideoUnavailable = errors.New("video is unavailable")
	ErrFetchingInfo     = errors.New("error fetching video info")
	ErrChoosingFormat   = errors.New("error choosing format")
	ErrOpeningStream    = errors.New("error opening stream")
	ErrFormatNotFound   = errors.New("format not found in video")
)
