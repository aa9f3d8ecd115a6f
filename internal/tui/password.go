package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-web/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// passwordModel asks for the new master password twice.
type passwordModel struct {
	ctx     context.Context
	session service.SessionService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newPasswordModel(ctx context.Context, session service.SessionService) passwordModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 256
		inputs[i].EchoMode = textinput.EchoPassword
		inputs[i].EchoCharacter = '*'
	}
	inputs[0].Placeholder = "new master password"
	inputs[1].Placeholder = "repeat"
	inputs[0].Focus()

	return passwordModel{ctx: ctx, session: session, inputs: inputs}
}

func (m passwordModel) Update(msg tea.Msg) (passwordModel, tea.Cmd) {
	switch msg := msg.(type) {
	case opDoneMsg:
		m.submitting = false
		m.errMsg = humanizeError(msg.err)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
			m.inputs[m.focus].Blur()
			m.focus = 1 - m.focus
			m.inputs[m.focus].Focus()
			return m, nil
		case key.Matches(msg, keys.enter):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m passwordModel) submit() (passwordModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	passphrase := m.inputs[0].Value()
	if passphrase == "" {
		m.errMsg = humanizeError(service.ErrEmptyMasterPassword)
		return m, nil
	}
	if passphrase != m.inputs[1].Value() {
		m.errMsg = humanizeError(errPasswordsDiffer)
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, session := m.ctx, m.session
	return m, func() tea.Msg {
		return opDoneMsg{op: opChangePassword, err: session.ChangeMasterPassword(ctx, passphrase)}
	}
}

func (m passwordModel) View() string {
	var b strings.Builder
	b.WriteString("New master password │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Repeat              │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\nUpdating...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CHANGE MASTER PASSWORD", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: change │ esc: cancel")
}
