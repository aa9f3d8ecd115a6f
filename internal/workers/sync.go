package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/service"
	"github.com/MKhiriev/go-pass-web/models"
)

const defaultSyncInterval = 5 * time.Minute

// SyncWorker re-reads the cloud blob on a ticker so that changes made from
// other devices are merged while the session stays open.
type SyncWorker struct {
	session  service.SessionService
	interval time.Duration

	logger *logger.Logger
}

// NewSyncWorker returns a SyncWorker. A zero or negative interval defaults to
// five minutes.
func NewSyncWorker(session service.SessionService, interval time.Duration, logger *logger.Logger) *SyncWorker {
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	return &SyncWorker{session: session, interval: interval, logger: logger}
}

func (w *SyncWorker) Run(ctx context.Context) error {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.tick(ctx)
		}
	}
}

// tick refreshes only a settled session. Loading states are skipped because
// login reads the cloud itself.
func (w *SyncWorker) tick(ctx context.Context) {
	switch w.session.View().State {
	case models.SessionReady, models.SessionSaving:
	default:
		return
	}

	if err := w.session.Refresh(ctx); err != nil {
		w.logger.Err(err).Str("func", "*SyncWorker.tick").Msg("periodic refresh failed")
	}
}
