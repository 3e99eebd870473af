package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/coin-gateway/internal/adapter"
	"github.com/MKhiriev/coin-gateway/internal/logger"
	"github.com/MKhiriev/coin-gateway/internal/service"
	"github.com/MKhiriev/coin-gateway/internal/utils"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order; the first match wins.
var errorStatusMap = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON was passed"},
	{ErrTokenMissing, http.StatusUnauthorized, "Token is missing"},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{service.ErrTokenExpired, http.StatusUnauthorized, "Token expired"},
	{service.ErrTokenInvalid, http.StatusUnauthorized, "Invalid token"},

	{adapter.ErrUnexpectedShape, http.StatusBadRequest, "Invalid data format, expected a list."},
	{adapter.ErrUpstreamStatus, http.StatusBadGateway, "Upstream service returned an error"},
	{adapter.ErrUpstreamUnreachable, http.StatusBadGateway, "Upstream service unavailable"},
}

const gatewayTimeoutMessage = "Gateway timeout"

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError answers r with the status and message mapped from err. A request
// whose own deadline has passed is answered with 504 whatever err is.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)
	if errors.Is(r.Context().Err(), context.DeadlineExceeded) {
		status, message = http.StatusGatewayTimeout, gatewayTimeoutMessage
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}

// writeJSON answers r with data and logs a body that could not be encoded or sent.
func writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
