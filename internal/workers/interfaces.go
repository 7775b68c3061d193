// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that runs every
// worker until the server context is cancelled.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled. Errors of individual iterations are
// logged by the worker itself; Run returns an error only when the worker
// cannot continue at all.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// ExpiredInfoDeleter removes expired cache entries. store.InfoCache
// implements it.
type ExpiredInfoDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// IdleClientCleaner forgets idle rate limiter clients. The HTTP handler's
// *RateLimiter implements it.
type IdleClientCleaner interface {
	Cleanup(maxIdle time.Duration) int
}
