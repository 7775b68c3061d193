// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/media-vault/internal/logger"
)

const defaultCacheCleanupInterval = 5 * time.Minute

// CacheCleanupWorker periodically removes expired video info entries.
type CacheCleanupWorker struct {
	cache    ExpiredInfoDeleter
	interval time.Duration

	logger *logger.Logger
}

func NewCacheCleanupWorker(cache ExpiredInfoDeleter, interval time.Duration, logger *logger.Logger) *CacheCleanupWorker {
	if interval <= 0 {
		interval = defaultCacheCleanupInterval
	}
	return &CacheCleanupWorker{
		cache:    cache,
		interval: interval,
		logger:   logger,
	}
}

func (w *CacheCleanupWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("cache cleanup worker started")
	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("cache cleanup worker stopped")
			return nil
		case <-ticker.C:
			w.cleanup(ctx)
		}
	}
}

func (w *CacheCleanupWorker) cleanup(ctx context.Context) {
	removed, err := w.cache.DeleteExpired(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("error deleting expired video info")
		return
	}
	if removed > 0 {
		w.logger.Debug().Int64("removed", removed).Msg("expired video info deleted")
	}
}
