// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/media-vault/internal/logger"
)

const (
	defaultLimiterCleanupInterval = time.Minute
	defaultLimiterMaxIdle         = 3 * time.Minute
)

// LimiterCleanupWorker keeps the per-client rate limiter table bounded.
type LimiterCleanupWorker struct {
	limiter  IdleClientCleaner
	interval time.Duration
	maxIdle  time.Duration

	logger *logger.Logger
}

func NewLimiterCleanupWorker(limiter IdleClientCleaner, interval, maxIdle time.Duration, logger *logger.Logger) *LimiterCleanupWorker {
	return &LimiterCleanupWorker{
		limiter:  limiter,
		interval: interval,
		maxIdle:  maxIdle,
		logger:   logger,
	}
}

func (w *LimiterCleanupWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if removed := w.limiter.Cleanup(w.maxIdle); removed > 0 {
				w.logger.Debug().Int("removed", removed).Msg("idle rate limiter clients removed")
			}
		}
	}
}
