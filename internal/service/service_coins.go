package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/coin-gateway/internal/adapter"
	"github.com/MKhiriev/coin-gateway/internal/logger"
	"github.com/MKhiriev/coin-gateway/models"
)

// coinService applies per-endpoint error policy and pagination on top of a
// CoinDataAdapter.
type coinService struct {
	coinData adapter.CoinDataAdapter

	logger *logger.Logger
}

func NewCoinService(coinData adapter.CoinDataAdapter, logger *logger.Logger) CoinService {
	return &coinService{
		coinData: coinData,
		logger:   logger,
	}
}

// ListCoins returns one page of the full coin listing. An upstream body that
// is not a list is served as an empty page.
func (c *coinService) ListCoins(ctx context.Context, page models.PageRequest) ([]models.Coin, error) {
	log := logger.FromContext(ctx)

	coins, err := c.coinData.ListCoins(ctx)
	if errors.Is(err, adapter.ErrUnexpectedShape) {
		log.Warn().Err(err).Msg("coin list has unexpected shape, serving empty list")
		return []models.Coin{}, nil
	}
	if err != nil {
		log.Err(err).Msg("fetching coin list failed")
		return nil, fmt.Errorf("fetching coin list failed: %w", err)
	}

	return Paginate(coins, page), nil
}

// ListCategories returns the full category listing.
func (c *coinService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := c.coinData.ListCategories(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("fetching categories failed")
		return nil, fmt.Errorf("fetching categories failed: %w", err)
	}

	return categories, nil
}

// ListFilteredCoins returns one page of market data for ids. Unlike ListCoins,
// an upstream body that is not a list is reported as adapter.ErrUnexpectedShape.
func (c *coinService) ListFilteredCoins(ctx context.Context, ids string, page models.PageRequest) ([]models.Coin, error) {
	coins, err := c.coinData.ListMarkets(ctx, ids)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("ids", ids).Msg("fetching market data failed")
		return nil, fmt.Errorf("fetching market data failed: %w", err)
	}

	return Paginate(coins, page), nil
}

// UpstreamHealthy reports whether the upstream answered its ping.
func (c *coinService) UpstreamHealthy(ctx context.Context) bool {
	if err := c.coinData.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("upstream ping failed")
		return false
	}
	return true
}
