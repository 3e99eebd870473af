// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound client for the third-party coin-data
// service.
//
// The primary abstraction is [CoinDataAdapter], which decouples the service
// layer from the upstream REST API. Every failure is reported as one of the
// sentinel errors in errors.go so callers can use [errors.Is] without knowing
// anything about HTTP: [ErrUpstreamUnreachable] for transport failures,
// [ErrUpstreamStatus] for non-2xx answers and [ErrUnexpectedShape] for bodies
// that are not JSON arrays.
package adapter

import (
	"context"

	"github.com/MKhiriev/coin-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/coin_data_adapter_mock.go -package=mock

// CoinDataAdapter fetches raw listings from the upstream coin-data service.
// Each method performs exactly one outbound request bound to ctx.
type CoinDataAdapter interface {
	// ListCoins returns the full coin listing (id, symbol, name).
	ListCoins(ctx context.Context) ([]models.Coin, error)

	// ListCategories returns the full category listing.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// ListMarkets returns market rows quoted in the configured currency.
	// ids is a comma-separated id list; when empty the upstream decides
	// which coins to return.
	ListMarkets(ctx context.Context, ids string) ([]models.Coin, error)

	// Ping reports whether the upstream answers its health endpoint with a
	// 2xx status.
	Ping(ctx context.Context) error
}
