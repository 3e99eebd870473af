package service

import (
	"context"

	"github.com/MKhiriev/coin-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and verifies bearer tokens for the single configured
// credential pair.
type AuthService interface {
	// Login checks creds against the configured pair and returns a freshly
	// signed token. Any mismatch yields ErrInvalidCredentials.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// ParseToken verifies tokenString and returns its claims. Returns
	// ErrTokenExpired or ErrTokenInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CoinService serves paginated coin data fetched from the upstream.
type CoinService interface {
	ListCoins(ctx context.Context, page models.PageRequest) ([]models.Coin, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListFilteredCoins(ctx context.Context, ids string, page models.PageRequest) ([]models.Coin, error)
	UpstreamHealthy(ctx context.Context) bool
}

// AppInfoService reports build metadata and liveness.
type AppInfoService interface {
	GetVersionInfo(ctx context.Context) models.VersionInfo
	GetHealthStatus(ctx context.Context) models.HealthStatus
}
