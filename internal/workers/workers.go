package workers

import (
	"context"

	"github.com/MKhiriev/go-pass-web/internal/config"
	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/service"
	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the client workers for session. A zero inactivity
// timeout disables the inactivity logout.
func NewWorkers(session service.SessionService, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	w := &Workers{workers: []Worker{NewSyncWorker(session, cfg.SyncInterval, logger)}}
	if cfg.InactivityTimeout > 0 {
		w.workers = append(w.workers, NewInactivityWorker(session, cfg.InactivityTimeout, logger))
	}
	return w
}

// Run starts all workers and waits for them. The first error cancels the
// others.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}
	return g.Wait()
}
