// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/media-vault/internal/config"
	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/models"
)

const (
	statusRunning = "MediaVault Pro API is running!"
	statusHealthy = "healthy"

	// ISO 8601 with millisecond precision in UTC, e.g. 2026-01-02T03:04:05.678Z
	healthTimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type appInfoService struct {
	appVersion string
	now        func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Status lists the public API routes.
func (s *appInfoService) Status(ctx context.Context) models.StatusResponse {
	return models.StatusResponse{
		Status: statusRunning,
		Endpoints: map[string]string{
			"info":     "POST /api/info",
			"download": "GET /api/download",
			"audio":    "GET /api/audio",
		},
	}
}

func (s *appInfoService) Health(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Status:    statusHealthy,
		Timestamp: s.now().UTC().Format(healthTimestampLayout),
	}
}
