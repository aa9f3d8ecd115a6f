package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/service"
	"github.com/MKhiriev/go-pass-web/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	session   service.SessionService
	buildInfo models.BuildInfo

	logger *logger.Logger
}

func New(session service.SessionService, buildInfo models.BuildInfo, logger *logger.Logger) *TUI {
	return &TUI{session: session, buildInfo: buildInfo, logger: logger}
}

// Run shows the UI until the user quits or ctx is cancelled. Session events
// are forwarded into the program for as long as it runs.
func (t *TUI) Run(ctx context.Context) error {
	p := tea.NewProgram(newRootModel(ctx, t.session, t.buildInfo), tea.WithAltScreen(), tea.WithContext(ctx))

	unsubscribe := t.session.Subscribe(func(event models.SessionEvent) {
		p.Send(sessionEventMsg{event: event})
	})
	defer unsubscribe()

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("ui stopped with error")
		return err
	}
	return nil
}
