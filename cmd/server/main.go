package main

import (
	"context"
	"os"

	"github.com/MKhiriev/coin-gateway/internal/adapter"
	"github.com/MKhiriev/coin-gateway/internal/config"
	"github.com/MKhiriev/coin-gateway/internal/handler"
	"github.com/MKhiriev/coin-gateway/internal/logger"
	"github.com/MKhiriev/coin-gateway/internal/metrics"
	"github.com/MKhiriev/coin-gateway/internal/server"
	"github.com/MKhiriev/coin-gateway/internal/service"
	"github.com/MKhiriev/coin-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	build.Print(os.Stdout)

	cfg, err := config.GetStructuredConfig(build)
	if err != nil {
		logger.NewLogger("coin-gateway", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("coin-gateway", cfg.App.LogLevel)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("upstream", cfg.Upstream.BaseURL).
		Str("version", cfg.App.Version).
		Msg("received configs")

	m := metrics.New()

	coinData, err := adapter.NewHTTPCoinDataAdapter(cfg.Upstream, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating upstream adapter")
	}

	services, err := service.NewServices(coinData, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
