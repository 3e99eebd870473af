package handler

import (
	"testing"

	"github.com/MKhiriev/coin-gateway/internal/config"
	"github.com/MKhiriev/coin-gateway/internal/logger"
	"github.com/MKhiriev/coin-gateway/internal/metrics"
	"github.com/MKhiriev/coin-gateway/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTP(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":8080"}, metrics.New(), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, handlers.HTTP)
	assert.NotNil(t, handlers.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	handlers, err := NewHandlers(&service.Services{}, config.Server{}, nil, logger.Nop())

	assert.Nil(t, handlers)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
