// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyURL         = errors.New("url is required")
	ErrMalformedURL     = errors.New("malformed url")
	ErrNotYouTubeDomain = errors.New("not a YouTube domain")
	ErrNoVideoID        = errors.New("no video id found in url")
	ErrInvalidVideoID   = errors.New("video id does not match the expected format")
	ErrInvalidItag      = errors.New("itag must be a positive integer")
)
