package client

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/service"
	"golang.org/x/sync/errgroup"
)

type App struct {
	session service.SessionService
	ui      Runner
	workers Runner

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui Runner, workers Runner, logger *logger.Logger) Client {
	return &App{
		session: services.SessionService,
		ui:      ui,
		workers: workers,
		logger:  logger,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

// run stops the workers as soon as the UI returns, then drains in-flight
// cloud writes and clears the session.
func (a *App) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.workers.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		return a.ui.Run(gctx)
	})

	err := g.Wait()

	a.session.Logout()
	a.logger.Info().Msg("waiting for pending cloud writes")
	a.session.Wait()

	return err
}
