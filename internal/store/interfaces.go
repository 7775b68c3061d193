// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Package store persists video metadata between extraction calls.
//
// The cache is backed by PostgreSQL or SQLite when a DSN is configured and
// by process memory otherwise. Entries carry an expiry; expired entries are
// invisible to readers and removed by a background worker.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/media-vault/models"
)

// InfoCache stores models.VideoInfo values keyed by video id.
type InfoCache interface {
	// Get returns the cached info of videoID. It returns [ErrInfoNotCached]
	// when there is no live entry.
	Get(ctx context.Context, videoID string) (models.VideoInfo, error)

	// Save stores info under info.ID for ttl, replacing any previous entry.
	Save(ctx context.Context, info models.VideoInfo, ttl time.Duration) error

	// DeleteExpired removes every expired entry and reports how many were
	// removed.
	DeleteExpired(ctx context.Context) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
