// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by cache methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInfoNotCached is returned when no live entry exists for a video.
	ErrInfoNotCached = errors.New("video info is not cached")

	// ErrEmptyVideoID is returned when an entry without a video id is saved.
	ErrEmptyVideoID = errors.New("video info has no id")

	// ErrEncodingPayload is returned when a VideoInfo cannot be serialized.
	ErrEncodingPayload = errors.New("error encoding cached payload")

	// ErrDecodingPayload is returned when a stored payload is not valid JSON
	// for a VideoInfo.
	ErrDecodingPayload = errors.New("error decoding cached payload")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRow      = errors.New("failed to scan cache row")
	ErrConnectingDB     = errors.New("error connecting database")
	ErrMigratingDB      = errors.New("error migrating database")
)
