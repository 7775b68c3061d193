// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/media-vault/internal/config"
	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/internal/metrics"
	"github.com/MKhiriev/media-vault/internal/service"
	"github.com/MKhiriev/media-vault/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	metrics  *metrics.Metrics
	limiter  *RateLimiter
	traceIDs *utils.TraceIDGenerator

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil m gets a private registry so the
// handler always records metrics.
func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, logger *logger.Logger) *Handler {
	if m == nil {
		m = metrics.New()
	}

	var limiter *RateLimiter
	if cfg.RateLimit > 0 {
		limiter = NewRateLimiter(cfg.RateLimit, cfg.RateBurst, m)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  m,
		limiter:  limiter,
		traceIDs: utils.NewTraceIDGenerator(),
		logger:   logger,
	}
}

// RateLimiter returns the per-client limiter, or nil when rate limiting is
// disabled.
func (h *Handler) RateLimiter() *RateLimiter {
	return h.limiter
}
