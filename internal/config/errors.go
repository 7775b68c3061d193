// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid. Callers can match them with [errors.Is].
var (
	// ErrInvalidServerConfigs indicates invalid listen address, port,
	// timeouts or rate limiting settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, negative response limits).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidExtractorConfigs indicates invalid extraction client settings
	// (for example, a proxy URL without scheme).
	ErrInvalidExtractorConfigs = errors.New("invalid extractor configuration")
	// ErrInvalidStorageConfigs indicates invalid cache settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing API address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrNoClientCommand is returned when the client is started without a
	// sub-command.
	ErrNoClientCommand = errors.New("no client command given")
)
