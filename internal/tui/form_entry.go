package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-web/internal/crypto"
	"github.com/MKhiriev/go-pass-web/internal/merge"
	"github.com/MKhiriev/go-pass-web/internal/service"
	"github.com/MKhiriev/go-pass-web/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldID = iota
	fieldUsername
	fieldPassword
	fieldWebsite
	fieldNotes
	fieldCount
)

var entryFieldLabels = [fieldCount]string{
	"Name:    ",
	"User:    ",
	"Password:",
	"Website: ",
	"Notes:   ",
}

// entryFormModel creates a new entry or edits an existing one. replacedID
// holds the id the edited entry had when the form was opened.
type entryFormModel struct {
	ctx     context.Context
	session service.SessionService

	inputs     []textinput.Model
	focus      int
	replacedID string
	submitting bool
	errMsg     string
}

func newEntryFormModel(ctx context.Context, session service.SessionService, entry *models.Entry) entryFormModel {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 1024
	}
	inputs[fieldID].Focus()

	m := entryFormModel{ctx: ctx, session: session, inputs: inputs}
	if entry == nil {
		return m
	}

	m.replacedID = entry.ID
	m.inputs[fieldID].SetValue(entry.ID)
	m.inputs[fieldUsername].SetValue(entry.Username)
	m.inputs[fieldPassword].SetValue(entry.Password)
	m.inputs[fieldWebsite].SetValue(entry.Website)
	m.inputs[fieldNotes].SetValue(entry.Notes)
	return m
}

func (m entryFormModel) editing() bool {
	return m.replacedID != ""
}

func (m entryFormModel) entry() models.Entry {
	return models.Entry{
		ID:       m.inputs[fieldID].Value(),
		Username: m.inputs[fieldUsername].Value(),
		Password: m.inputs[fieldPassword].Value(),
		Website:  m.inputs[fieldWebsite].Value(),
		Notes:    m.inputs[fieldNotes].Value(),
	}
}

func (m entryFormModel) Update(msg tea.Msg) (entryFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.inputs[fieldPassword].SetValue(msg.password)
		return m, nil
	case opDoneMsg:
		m.submitting = false
		m.errMsg = humanizeError(msg.err)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
			return m, nil
		case key.Matches(msg, keys.generate):
			return m, cmdGeneratePassword()
		case key.Matches(msg, keys.save), key.Matches(msg, keys.enter) && m.focus == fieldNotes:
			return m.submit()
		case key.Matches(msg, keys.enter):
			m.setFocus(m.focus + 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m entryFormModel) submit() (entryFormModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	entry := m.entry()
	if strings.TrimSpace(entry.ID) == "" || entry.Password == "" {
		m.errMsg = humanizeError(service.ErrInvalidEntry)
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, session, replacedID := m.ctx, m.session, m.replacedID
	return m, func() tea.Msg {
		return opDoneMsg{op: opSave, err: session.SaveEntry(ctx, entry, replacedID)}
	}
}

func (m *entryFormModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m entryFormModel) View() string {
	var b strings.Builder
	for i, input := range m.inputs {
		b.WriteString(entryFieldLabels[i])
		b.WriteString(" [")
		b.WriteString(input.View())
		b.WriteString("]")
		if i == fieldPassword {
			if label := merge.WeaknessLabel(input.Value()); label != "" {
				b.WriteString(" " + weakStyle.Render(label))
			}
		}
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\nSaving...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	title := "NEW ENTRY"
	if m.editing() {
		title = "EDIT: " + m.replacedID
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+g: generate password │ ctrl+s: save │ esc: cancel")
}

func cmdGeneratePassword() tea.Cmd {
	return func() tea.Msg {
		password, err := crypto.GeneratePassword(crypto.DefaultPasswordOptions())
		return generatedMsg{password: password, err: err}
	}
}
