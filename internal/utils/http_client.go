package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a JSON client bound to baseURL.
//
// Every request is bounded by timeout and attempted exactly once: retries
// are disabled so a single inbound request maps to a single outbound call.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.coingecko.com/api/v3", 10*time.Second)
//	resp, err := client.R().Get("/ping")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "coin-gateway")

	return &HTTPClient{Client: client}
}
