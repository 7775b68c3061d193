// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithBaseURL("http://localhost:3000"))
//	resp, err := client.R().Get("/health")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOption customizes a client built by NewHTTPClient.
type HTTPClientOption func(*resty.Client)

// WithBaseURL sets the URL relative request paths are resolved against.
func WithBaseURL(baseURL string) HTTPClientOption {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithProxy routes requests through proxyURL. An empty value is a no-op.
func WithProxy(proxyURL string) HTTPClientOption {
	return func(c *resty.Client) {
		if proxyURL != "" {
			c.SetProxy(proxyURL)
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) HTTPClientOption {
	return func(c *resty.Client) {
		if userAgent != "" {
			c.SetHeader("User-Agent", userAgent)
		}
	}
}

// NewHTTPClient creates and returns a new HTTPClient instance
// configured by opts.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. The underlying *http.Client
// is available through GetClient for libraries that need a plain one.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.WithProxy("http://proxy:8080"))
//	yt := youtube.Client{HTTPClient: client.GetClient()}
func NewHTTPClient(opts ...HTTPClientOption) *HTTPClient {
	client := resty.New()
	for _, opt := range opts {
		opt(client)
	}
	return &HTTPClient{Client: client}
}
