package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/coin-gateway/internal/config"
	"github.com/MKhiriev/coin-gateway/internal/logger"
	"github.com/MKhiriev/coin-gateway/internal/metrics"
	"github.com/MKhiriev/coin-gateway/internal/utils"
	"github.com/MKhiriev/coin-gateway/models"
)

const (
	pingPath           = "/ping"
	coinsListPath      = "/coins/list"
	categoriesListPath = "/coins/categories/list"
	marketsPath        = "/coins/markets"

	apiKeyHeader = "x-cg-demo-api-key"
)

type httpCoinDataAdapter struct {
	client     *utils.HTTPClient
	vsCurrency string

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewHTTPCoinDataAdapter constructs the REST implementation of
// [CoinDataAdapter]. It normalises the base URL from cfg.BaseURL, bounds every
// call by cfg.Timeout and attaches cfg.APIKey (when set) as the demo API key
// header.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPCoinDataAdapter(cfg config.Upstream, m *metrics.Metrics, log *logger.Logger) (CoinDataAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream base url: %w", err)
	}

	if log == nil {
		log = logger.Nop()
	}

	client := utils.NewHTTPClient(baseURL, cfg.Timeout)
	if cfg.APIKey != "" {
		client.SetHeader(apiKeyHeader, cfg.APIKey)
	}

	return &httpCoinDataAdapter{
		client:     client,
		vsCurrency: cfg.VsCurrency,
		metrics:    m,
		logger:     log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListCoins implements [CoinDataAdapter]. GET /coins/list.
func (h *httpCoinDataAdapter) ListCoins(ctx context.Context) ([]models.Coin, error) {
	return fetchList[models.Coin](ctx, h, coinsListPath, nil)
}

// ListCategories implements [CoinDataAdapter]. GET /coins/categories/list.
func (h *httpCoinDataAdapter) ListCategories(ctx context.Context) ([]models.Category, error) {
	return fetchList[models.Category](ctx, h, categoriesListPath, nil)
}

// ListMarkets implements [CoinDataAdapter]. GET /coins/markets with
// vs_currency always set and ids only when non-empty.
func (h *httpCoinDataAdapter) ListMarkets(ctx context.Context, ids string) ([]models.Coin, error) {
	query := map[string]string{"vs_currency": h.vsCurrency}
	if ids != "" {
		query["ids"] = ids
	}

	return fetchList[models.Coin](ctx, h, marketsPath, query)
}

// Ping implements [CoinDataAdapter]. GET /ping; the body is ignored.
func (h *httpCoinDataAdapter) Ping(ctx context.Context) error {
	start := time.Now()
	_, err := h.get(ctx, pingPath, nil)
	h.observe(pingPath, start, err)
	return err
}

func fetchList[T any](ctx context.Context, h *httpCoinDataAdapter, path string, query map[string]string) ([]T, error) {
	start := time.Now()

	body, err := h.get(ctx, path, query)
	if err != nil {
		h.observe(path, start, err)
		return nil, err
	}

	items, err := decodeList[T](body)
	h.observe(path, start, err)
	if err != nil {
		return nil, fmt.Errorf("decode %s response: %w", path, err)
	}

	return items, nil
}

func (h *httpCoinDataAdapter) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	req := h.client.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrUpstreamUnreachable, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}

	return resp.Body(), nil
}

func (h *httpCoinDataAdapter) observe(path string, start time.Time, err error) {
	elapsed := time.Since(start)
	h.metrics.ObserveUpstream(path, outcomeOf(err), elapsed)

	if err != nil {
		h.logger.Warn().Err(err).Str("endpoint", path).Dur("elapsed", elapsed).Msg("upstream call failed")
		return
	}
	h.logger.Debug().Str("endpoint", path).Dur("elapsed", elapsed).Msg("upstream call succeeded")
}
