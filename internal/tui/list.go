package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-web/internal/merge"
	"github.com/MKhiriev/go-pass-web/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	listIDWidth       = 28
	listUsernameWidth = 24
)

// listModel shows the entries matching the filter text.
type listModel struct {
	filter  textinput.Model
	entries []models.Entry
	idx     int
}

func newListModel() listModel {
	filter := textinput.New()
	filter.Placeholder = "filter"
	filter.Prompt = "/ "
	filter.Width = 40
	return listModel{filter: filter}
}

func (m listModel) filtering() bool {
	return m.filter.Focused()
}

// setEntries replaces the visible entries and keeps the cursor in range.
func (m listModel) setEntries(entries []models.Entry) listModel {
	m.entries = entries
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m listModel) current() (models.Entry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.Entry{}, false
	}
	return m.entries[m.idx], true
}

func (m listModel) moveUp() listModel {
	if m.idx > 0 {
		m.idx--
	}
	return m
}

func (m listModel) moveDown() listModel {
	if m.idx < len(m.entries)-1 {
		m.idx++
	}
	return m
}

func (m listModel) updateFilter(msg tea.Msg) (listModel, tea.Cmd) {
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m listModel) View(view models.SessionView, progress string) string {
	var b strings.Builder

	header := fmt.Sprintf("User: %s   State: %s", view.Username, view.State)
	if progress != "" {
		header += "   " + progress
	}
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		if view.State == models.SessionLoadingLocal || view.State == models.SessionLoadingRemote {
			b.WriteString("Loading...\n")
		} else {
			b.WriteString("No entries\n")
		}
	}

	for i, e := range m.entries {
		line := fmt.Sprintf("%-*s %-*s", listIDWidth, fitText(e.ID, listIDWidth), listUsernameWidth, fitText(e.Username, listUsernameWidth))
		if label := merge.WeaknessLabel(e.Password); label != "" {
			line += " " + weakStyle.Render(label)
		}
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if errs := renderStatusErrors(view.Errors); errs != "" {
		b.WriteString("\n")
		b.WriteString(errs)
		b.WriteString("\n")
	}

	return renderPage("PASSWEB", strings.TrimRight(b.String(), "\n"),
		"/: filter │ enter: open │ n: new │ e: edit │ d: delete │ c/u: copy password/user │ r: refresh │ m: master password │ o: log out │ q: quit")
}
