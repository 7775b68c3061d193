// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the MediaVault HTTP server together with its
// background workers.
//
// It owns startup, signal handling and graceful shutdown: on SIGTERM, SIGINT
// or SIGQUIT the HTTP server stops accepting connections, in-flight requests
// get [config.Server.ShutdownTimeout] to finish and the workers are stopped.
package server
