package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/coin-gateway/internal/config"
	"github.com/MKhiriev/coin-gateway/internal/handler"
	"github.com/MKhiriev/coin-gateway/internal/logger"
	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer      *httpServer
	shutdownTimeout time.Duration

	// ready is closed once the listener is bound.
	ready chan struct{}

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	shutdownTimeout := cfg.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		shutdownTimeout: shutdownTimeout,
		ready:           make(chan struct{}),
		logger:          logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.httpServer.listen(); err != nil {
		return err
	}
	close(s.ready)

	g, gctx := errgroup.WithContext(ctx)

	s.logger.Info().Msg("Launching HTTP server")
	g.Go(s.httpServer.serve)

	// listen for stop signals or a failed serve
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		return s.httpServer.shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
