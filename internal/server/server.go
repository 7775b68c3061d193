// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/media-vault/internal/config"
	"github.com/MKhiriev/media-vault/internal/handler"
	"github.com/MKhiriev/media-vault/internal/logger"
)

// BackgroundWorkers is the part of workers.Workers the server drives.
type BackgroundWorkers interface {
	Run(ctx context.Context) error
}

type server struct {
	httpServer *httpServer
	workers    BackgroundWorkers
	logger     *logger.Logger

	shutdown     chan struct{}
	shutdownOnce sync.Once
}

// NewServer creates the server. workers may be nil.
func NewServer(handlers *handler.Handlers, workers BackgroundWorkers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    workers,
		logger:     logger,
		shutdown:   make(chan struct{}),
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

// Shutdown stops the server as if a termination signal was received.
func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() { close(s.shutdown) })
}

// run serves until ctx is done or the listener fails, then shuts the HTTP
// server down and waits for the workers.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

	workersDone := make(chan error, 1)
	if s.workers != nil {
		s.logger.Info().Msg("Launching background workers")
		go func() { workersDone <- s.workers.Run(ctx) }()
	} else {
		workersDone <- nil
	}

	serveErr := make(chan error, 1)
	s.logger.Info().Msg("Launching HTTP server")
	go func() { serveErr <- s.httpServer.serve() }()

	var err error
	select {
	case <-ctx.Done():
		s.httpServer.Shutdown()
		err = <-serveErr
	case err = <-serveErr:
	}
	cancel()

	if werr := <-workersDone; werr != nil {
		s.logger.Error().Err(werr).Msg("background workers stopped with error")
	}
	if err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
