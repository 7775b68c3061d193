// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/media-vault/internal/config"
	"github.com/MKhiriev/media-vault/internal/extractor"
	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/internal/store"
)

type Services struct {
	AppInfoService AppInfoService
	VideoService   VideoService
}

// NewServices assembles the service layer. Metadata lookups go through the
// info cache in storages; every video request is validated first.
func NewServices(storages *store.Storages, ext extractor.Extractor, observer CacheObserver, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	cached := NewInfoCachingExtractor(storages.InfoCache, cfg.Storage.Cache.TTL, observer, logger).Wrap(ext)
	videoService := NewVideoValidationService().Wrap(NewVideoService(cached, cfg.App, logger))

	return &Services{
		AppInfoService: appInfoService,
		VideoService:   videoService,
	}, nil
}
