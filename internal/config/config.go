// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"

	"github.com/MKhiriev/coin-gateway/models"
)

// StructuredConfig is the top-level configuration container for the
// coin-gateway application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application metadata reported by the version endpoint and
	// the log level.
	App App `envPrefix:"APP_"`

	// Auth holds the single accepted credential pair and the token
	// signing parameters.
	Auth Auth `envPrefix:"AUTH_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Upstream holds settings of the third-party coin-data service.
	Upstream Upstream `envPrefix:"UPSTREAM_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level metadata.
type App struct {
	// Version is the application version (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// APIVersion is the version of the public HTTP API.
	// Env: APP_API_VERSION
	APIVersion string `env:"API_VERSION"`

	// BuildTime is the build date reported by the version endpoint.
	// Env: APP_BUILD_TIME
	BuildTime string `env:"BUILD_TIME"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Auth holds the accepted credential pair and token parameters.
type Auth struct {
	// Username is the only login accepted by the gateway.
	// Env: AUTH_USERNAME
	Username string `env:"USERNAME"`

	// Password is the password paired with Username. Must be kept confidential.
	// Env: AUTH_PASSWORD
	Password string `env:"PASSWORD"`

	// TokenSignKey is the HMAC secret used to sign and verify tokens.
	// Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// checked on every authenticated request.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the token TTL (e.g. "30m", "1h").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Upstream holds settings of the third-party coin-data service.
type Upstream struct {
	// BaseURL is the root of the upstream REST API
	// (e.g. "https://api.coingecko.com/api/v3").
	// Env: UPSTREAM_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds every outbound call.
	// Env: UPSTREAM_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// APIKey is an optional demo API key sent with every request.
	// Env: UPSTREAM_API_KEY
	APIKey string `env:"API_KEY"`

	// VsCurrency is the quote currency requested from the markets endpoint.
	// Env: UPSTREAM_VS_CURRENCY
	VsCurrency string `env:"VS_CURRENCY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults, with version and build time taken from build when
//     the binary was stamped via linker flags
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(build models.AppBuildInfo) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults(build).
		build()
}
