// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/media-vault/internal/adapter"
	"github.com/MKhiriev/media-vault/internal/client"
	"github.com/MKhiriev/media-vault/internal/config"
	"github.com/MKhiriev/media-vault/internal/logger"
	"github.com/MKhiriev/media-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: client [flags] info|download|audio|health <url> [itag|quality]`

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n%s\n", err, usage)
		os.Exit(2)
	}

	log := logger.NewFileLogger("media-vault-client", cfg.LogLevel)
	log.Debug().Str("version", buildInfo.BuildVersion()).Str("commit", buildInfo.BuildCommit()).Msg("client started")

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	dir, err := os.Getwd()
	if err != nil {
		log.Fatal().Err(err).Msg("resolve output directory")
	}

	app, err := client.NewApp(serverAdapter, cfg.Args, dir, os.Stdout, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n%s\n", err, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
