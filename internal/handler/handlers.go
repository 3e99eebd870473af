package handler

import (
	"github.com/MKhiriev/coin-gateway/internal/config"
	"github.com/MKhiriev/coin-gateway/internal/handler/http"
	"github.com/MKhiriev/coin-gateway/internal/logger"
	"github.com/MKhiriev/coin-gateway/internal/metrics"
	"github.com/MKhiriev/coin-gateway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, metrics *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, metrics, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
