package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-web/internal/config"
	"github.com/MKhiriev/go-pass-web/internal/handler"
	"github.com/MKhiriev/go-pass-web/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg *config.ServerConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTP.Address != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg.HTTP, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves until a stop signal arrives or the listener fails.
func (s *server) RunServer() error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) run(ctx context.Context) error {
	serveErr := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	err := <-serveErr
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}
