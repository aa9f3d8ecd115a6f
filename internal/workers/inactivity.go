package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/service"
	"github.com/MKhiriev/go-pass-web/models"
)

const maxInactivityCheck = 5 * time.Second

// InactivityWorker logs the session out once no activity was recorded for
// the configured timeout.
type InactivityWorker struct {
	session service.SessionService
	timeout time.Duration
	check   time.Duration
	now     func() time.Time

	logger *logger.Logger
}

func NewInactivityWorker(session service.SessionService, timeout time.Duration, logger *logger.Logger) *InactivityWorker {
	check := timeout / 4
	if check > maxInactivityCheck {
		check = maxInactivityCheck
	}
	if check <= 0 {
		check = time.Millisecond
	}

	return &InactivityWorker{
		session: session,
		timeout: timeout,
		check:   check,
		now:     time.Now,
		logger:  logger,
	}
}

func (w *InactivityWorker) Run(ctx context.Context) error {
	t := time.NewTicker(w.check)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			w.tick()
		}
	}
}

func (w *InactivityWorker) tick() {
	if w.session.View().State == models.SessionLoggedOut {
		return
	}

	idle := w.now().Sub(w.session.LastActivity())
	if idle < w.timeout {
		return
	}

	w.logger.Info().Dur("idle", idle).Msg("logging out after inactivity")
	w.session.Logout()
}
