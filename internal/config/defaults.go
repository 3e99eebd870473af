package config

import (
	"time"

	"github.com/MKhiriev/coin-gateway/models"
)

// Built-in defaults applied to every field left unset by env, flags and JSON.
const (
	DefaultAppVersion      = "1.0.0"
	DefaultAPIVersion      = "1.0.0"
	DefaultLogLevel        = "info"
	DefaultTokenIssuer     = "coin-gateway"
	DefaultTokenDuration   = 30 * time.Minute
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultUpstreamURL     = "https://api.coingecko.com/api/v3"
	DefaultUpstreamTimeout = 10 * time.Second
	DefaultVsCurrency      = "cad"
)

func defaults(build models.AppBuildInfo) *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{
			Version:    DefaultAppVersion,
			APIVersion: DefaultAPIVersion,
			BuildTime:  build.BuildDate(),
			LogLevel:   DefaultLogLevel,
		},
		Auth: Auth{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Upstream: Upstream{
			BaseURL:    DefaultUpstreamURL,
			Timeout:    DefaultUpstreamTimeout,
			VsCurrency: DefaultVsCurrency,
		},
	}

	if build.IsReleased() {
		cfg.App.Version = build.BuildVersion()
	}

	return cfg
}
