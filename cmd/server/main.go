// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/media-vault/internal/config"
	"github.com/MKhiriev/media-vault/internal/extractor"
	"github.com/MKhiriev/media-vault/internal/handler"
	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/internal/metrics"
	"github.com/MKhiriev/media-vault/internal/server"
	"github.com/MKhiriev/media-vault/internal/service"
	"github.com/MKhiriev/media-vault/internal/store"
	"github.com/MKhiriev/media-vault/internal/workers"
	"github.com/MKhiriev/media-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("media-vault-server", "").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("media-vault-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	m := metrics.New()

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	ext := extractor.NewYouTubeExtractor(cfg.Extractor, log, extractor.WithObserver(m))

	services, err := service.NewServices(storages, ext, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	// an untyped nil keeps the limiter cleanup worker out when rate limiting is off
	var limiter workers.IdleClientCleaner
	if rl := handlers.HTTP.RateLimiter(); rl != nil {
		limiter = rl
	}
	backgroundWorkers := workers.NewWorkers(storages.InfoCache, limiter, cfg.Workers, log)

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
