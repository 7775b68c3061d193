// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Transport level failures that never reach the service layer.
var (
	// ErrInvalidJSON is reported when the /api/info body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrTooManyRequests is reported when a client exhausts its rate limit.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrNotFound is reported for unknown routes and unsupported methods.
	ErrNotFound = errors.New("not found")
)
