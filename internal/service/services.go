package service

import (
	"fmt"

	"github.com/MKhiriev/coin-gateway/internal/adapter"
	"github.com/MKhiriev/coin-gateway/internal/config"
	"github.com/MKhiriev/coin-gateway/internal/logger"
)

type Services struct {
	AuthService    AuthService
	CoinService    CoinService
	AppInfoService AppInfoService
}

func NewServices(coinData adapter.CoinDataAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(cfg.Auth, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	coinService := NewCoinService(coinData, logger)

	appInfoService, err := NewAppInfoService(cfg.App, coinService, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		CoinService:    coinService,
		AppInfoService: appInfoService,
	}, nil
}
