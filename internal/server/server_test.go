package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/coin-gateway/internal/config"
	"github.com/MKhiriev/coin-gateway/internal/handler"
	"github.com/MKhiriev/coin-gateway/internal/logger"
	"github.com/MKhiriev/coin-gateway/internal/metrics"
	"github.com/MKhiriev/coin-gateway/internal/service"
	"github.com/MKhiriev/coin-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppInfo struct{}

func (stubAppInfo) GetVersionInfo(ctx context.Context) models.VersionInfo {
	return models.VersionInfo{AppVersion: "test"}
}
func (stubAppInfo) GetHealthStatus(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{Status: models.StatusOK, ThirdPartyStatus: models.StatusUnhealthy}
}

func newTestServer(t *testing.T, addr string) *server {
	t.Helper()
	cfg := config.Server{HTTPAddress: addr, RequestTimeout: time.Second, ShutdownTimeout: time.Second}

	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: stubAppInfo{}}, cfg, metrics.New(), logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, cfg, logger.Nop())
	require.NoError(t, err)
	return srv.(*server)
}

func TestNewServer_NoHandlers(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":0"}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_DefaultShutdownTimeout(t *testing.T) {
	handlers, err := handler.NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":0"}, nil, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, config.Server{HTTPAddress: ":0"}, logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, defaultShutdownTimeout, srv.(*server).shutdownTimeout)
}

func TestRunServer_ServesAndShutsDown(t *testing.T) {
	srv := newTestServer(t, "127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.RunServer(ctx) }()

	select {
	case <-srv.ready:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/version", srv.httpServer.listener.Addr()))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunServer_AddressInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := newTestServer(t, ln.Addr().String())

	err = srv.RunServer(context.Background())

	assert.Error(t, err)
}
