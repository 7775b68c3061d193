// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Default values applied by [StructuredConfig.applyDefaults] to every field
// that no source has set.
const (
	defaultPort                 = "3000"
	defaultRequestTimeout       = 30 * time.Second
	defaultShutdownTimeout      = 10 * time.Second
	defaultExtractorTimeout     = 20 * time.Second
	defaultCacheTTL             = 10 * time.Minute
	defaultCacheCleanupInterval = 5 * time.Minute
	defaultInfoFormatsLimit     = 5
	defaultDescriptionLimit     = 200
	defaultLogLevel             = "debug"
	defaultAdapterAddress       = "http://localhost:3000"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinel errors from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Port != "" {
		port, err := strconv.Atoi(cfg.Port)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("%w: PORT %q", ErrInvalidServerConfigs, cfg.Port)
		}
	}

	if cfg.Server.HTTPAddress != "" {
		if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
		}
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidServerConfigs)
	}

	if cfg.App.InfoFormatsLimit < 0 || cfg.App.DescriptionLimit < 0 {
		return fmt.Errorf("%w: negative response limit", ErrInvalidAppConfigs)
	}

	if cfg.Extractor.Timeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidExtractorConfigs)
	}

	if cfg.Extractor.ProxyURL != "" {
		u, err := url.Parse(cfg.Extractor.ProxyURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: proxy url %q", ErrInvalidExtractorConfigs, cfg.Extractor.ProxyURL)
		}
	}

	if cfg.Storage.Cache.TTL < 0 {
		return fmt.Errorf("%w: negative cache ttl", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.CacheCleanupInterval < 0 {
		return fmt.Errorf("%w: negative cleanup interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

// applyDefaults fills every unset field with its default value.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		port := cfg.Port
		if port == "" {
			port = defaultPort
		}
		cfg.Server.HTTPAddress = ":" + port
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.Server.RateLimit > 0 && cfg.Server.RateBurst == 0 {
		cfg.Server.RateBurst = int(cfg.Server.RateLimit + 0.999)
	}

	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = defaultLogLevel
	}
	if cfg.App.InfoFormatsLimit == 0 {
		cfg.App.InfoFormatsLimit = defaultInfoFormatsLimit
	}
	if cfg.App.DescriptionLimit == 0 {
		cfg.App.DescriptionLimit = defaultDescriptionLimit
	}

	if cfg.Extractor.Timeout == 0 {
		cfg.Extractor.Timeout = defaultExtractorTimeout
	}

	if cfg.Storage.Cache.TTL == 0 {
		cfg.Storage.Cache.TTL = defaultCacheTTL
	}
	if cfg.Workers.CacheCleanupInterval == 0 {
		cfg.Workers.CacheCleanupInterval = defaultCacheCleanupInterval
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if len(cfg.Args) == 0 {
		return ErrNoClientCommand
	}

	return nil
}
