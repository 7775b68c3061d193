// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the media-vault API.
//
// It wires the chi router, decodes requests, maps service errors onto status
// codes and JSON error bodies, and pipes media streams to the client.
// Request tracing, access logging, metrics, CORS, rate limiting and response
// compression are handled by middleware in this package before requests are
// delegated to the service layer.
package http
