// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout metadata request timeout (e.g., "30s", "1m")
//	-allowed-origins comma separated CORS origins
//	-rate-limit per-client requests per second
//	-rate-burst per-client burst size
//	-log-level zerolog level
//	-extractor-timeout YouTube metadata lookup timeout
//	-proxy outbound proxy URL
//	-d cache database DSN
//	-cache-ttl info cache TTL
//	-server API address used by the client
//	-c/-config json file path with configs
//
// Positional arguments left after the flags are returned in
// [StructuredConfig.Args].
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var requestTimeout time.Duration
	var allowedOrigins string
	var rateLimit float64
	var rateBurst int
	var logLevel string
	var extractorTimeout time.Duration
	var proxyURL string
	var databaseDSN string
	var cacheTTL time.Duration
	var adapterAddress string
	var jsonConfigPath string

	fs := flag.NewFlagSet("media-vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Metadata request timeout (e.g., 30s, 1m)")
	fs.StringVar(&allowedOrigins, "allowed-origins", "", "Comma separated CORS origins")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Per-client requests per second")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Per-client burst size")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.DurationVar(&extractorTimeout, "extractor-timeout", 0, "YouTube metadata lookup timeout")
	fs.StringVar(&proxyURL, "proxy", "", "Outbound proxy URL")
	fs.StringVar(&databaseDSN, "d", "", "Cache database DSN")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Info cache TTL")
	fs.StringVar(&adapterAddress, "server", "", "API address used by the client")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: splitList(allowedOrigins),
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Extractor: Extractor{
			Timeout:  extractorTimeout,
			ProxyURL: proxyURL,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Cache: Cache{TTL: cacheTTL},
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
		},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds every interface. It validates the port range, checks IP
// correctness unless host is "localhost" or empty, and returns an error if
// the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
