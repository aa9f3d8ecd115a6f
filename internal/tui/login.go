// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-web/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// loginModel is the login screen: user name, master password and the
// "cache locally" toggle. The user name and toggle are prefilled from the
// last login.
type loginModel struct {
	ctx     context.Context
	session service.SessionService

	inputs       []textinput.Model
	focus        int
	cacheLocally bool
	submitting   bool
	errMsg       string
	notice       string
}

func newLoginModel(ctx context.Context, session service.SessionService) loginModel {
	username := textinput.New()
	username.Placeholder = "user name"
	username.CharLimit = 128
	username.Width = 40

	password := textinput.New()
	password.Placeholder = "master password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	m := loginModel{
		ctx:     ctx,
		session: session,
		inputs:  []textinput.Model{username, password},
	}

	last, cacheLocally := session.LastLogin(ctx)
	m.inputs[0].SetValue(last)
	m.cacheLocally = cacheLocally
	if last != "" {
		m.focus = 1
	}
	m.inputs[m.focus].Focus()

	return m
}

// reset clears the password after a logout and shows notice above the form.
func (m loginModel) reset(notice string) loginModel {
	m.inputs[1].SetValue("")
	m.inputs[m.focus].Blur()
	m.focus = 1
	m.inputs[m.focus].Focus()
	m.submitting = false
	m.errMsg = ""
	m.notice = notice
	return m
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	if done, ok := msg.(loginDoneMsg); ok {
		m.submitting = false
		m.errMsg = humanizeError(done.err)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.toggleSave):
			m.cacheLocally = !m.cacheLocally
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			passphrase := m.inputs[1].Value()
			if username == "" {
				m.errMsg = "A user name is required."
				return m, nil
			}

			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, m.cmdLogin(username, passphrase)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	var b strings.Builder
	if m.notice != "" {
		b.WriteString(m.notice)
		b.WriteString("\n\n")
	}

	b.WriteString("User name       │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Master password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	check := "[ ]"
	if m.cacheLocally {
		check = "[x]"
	}
	b.WriteString("Cache locally   │ ")
	b.WriteString(check)
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("PASSWEB LOGIN", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+t: toggle cache │ enter: log in │ ctrl+b: about")
}

func (m loginModel) cmdLogin(username, passphrase string) tea.Cmd {
	ctx := m.ctx
	session := m.session
	cacheLocally := m.cacheLocally

	return func() tea.Msg {
		return loginDoneMsg{err: session.Login(ctx, username, passphrase, cacheLocally)}
	}
}

func (m *loginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
