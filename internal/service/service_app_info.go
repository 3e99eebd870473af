package service

import (
	"context"
	"time"

	"github.com/MKhiriev/coin-gateway/internal/config"
	"github.com/MKhiriev/coin-gateway/internal/logger"
	"github.com/MKhiriev/coin-gateway/models"
)

// upstreamProber is the part of CoinService the health report needs.
type upstreamProber interface {
	UpstreamHealthy(ctx context.Context) bool
}

type appInfoService struct {
	appVersion string
	apiVersion string
	buildTime  string

	upstream upstreamProber
	now      func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, upstream upstreamProber, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		apiVersion: cfg.APIVersion,
		buildTime:  cfg.BuildTime,
		upstream:   upstream,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetVersionInfo(ctx context.Context) models.VersionInfo {
	return models.VersionInfo{
		AppVersion: s.appVersion,
		APIVersion: s.apiVersion,
		BuildTime:  s.buildTime,
		Timestamp:  s.now().UTC(),
	}
}

// GetHealthStatus always reports the gateway itself as OK; the upstream
// verdict goes into ThirdPartyStatus.
func (s *appInfoService) GetHealthStatus(ctx context.Context) models.HealthStatus {
	thirdParty := models.StatusUnhealthy
	if s.upstream != nil && s.upstream.UpstreamHealthy(ctx) {
		thirdParty = models.StatusHealthy
	}

	return models.HealthStatus{
		Status:           models.StatusOK,
		Timestamp:        s.now().UTC(),
		ThirdPartyStatus: thirdParty,
	}
}
