// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/media-vault/internal/config"
	"github.com/MKhiriev/media-vault/internal/logger"
)

type Workers struct {
	workers []Worker

	logger *logger.Logger
}

// NewWorkers builds the background workers of the server. A nil limiter
// means rate limiting is disabled and needs no cleanup.
func NewWorkers(cache ExpiredInfoDeleter, limiter IdleClientCleaner, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}

	if cache != nil {
		w.workers = append(w.workers, NewCacheCleanupWorker(cache, cfg.CacheCleanupInterval, logger))
	}
	if limiter != nil {
		w.workers = append(w.workers, NewLimiterCleanupWorker(limiter, defaultLimiterCleanupInterval, defaultLimiterMaxIdle, logger))
	}

	return w
}

// Run starts every worker and blocks until all of them have returned. The
// first worker error cancels the others.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}

// Len returns the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
