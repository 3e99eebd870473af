package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/coin-gateway/internal/metrics"
	"github.com/go-resty/resty/v2"
)

const maxErrorBodyLen = 256

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	if len(body) > maxErrorBodyLen {
		body = body[:maxErrorBodyLen] + "..."
	}

	return fmt.Errorf("%w: http %d: %s", ErrUpstreamStatus, resp.StatusCode(), body)
}

func decodeList[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: body is not a JSON array", ErrUnexpectedShape)
	}

	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnexpectedShape, err)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// outcomeOf turns an adapter error into a metrics outcome label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrUpstreamStatus):
		return metrics.OutcomeBadStatus
	case errors.Is(err, ErrUnexpectedShape):
		return metrics.OutcomeBadShape
	default:
		return metrics.OutcomeUnreachable
	}
}
