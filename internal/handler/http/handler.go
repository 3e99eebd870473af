package http

import (
	"time"

	"github.com/MKhiriev/coin-gateway/internal/config"
	"github.com/MKhiriev/coin-gateway/internal/logger"
	"github.com/MKhiriev/coin-gateway/internal/metrics"
	"github.com/MKhiriev/coin-gateway/internal/service"
)

const defaultRequestTimeout = 30 * time.Second

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	logger.Info().Dur("request_timeout", requestTimeout).Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        metrics,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
