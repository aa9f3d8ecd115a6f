package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-web/internal/merge"
	"github.com/MKhiriev/go-pass-web/models"
)

type detailModel struct {
	entry    models.Entry
	revealed bool
	status   string
}

func (m detailModel) View() string {
	var b strings.Builder

	password := mask(m.entry.Password)
	if m.revealed {
		password = m.entry.Password
	}

	b.WriteString("Name:     " + m.entry.ID + "\n")
	b.WriteString("User:     " + valueOrDash(m.entry.Username) + "\n")
	b.WriteString("Password: " + password)
	if label := merge.WeaknessLabel(m.entry.Password); label != "" {
		b.WriteString(" " + weakStyle.Render(label))
	}
	b.WriteString("\n")
	b.WriteString("Website:  " + valueOrDash(m.entry.Website) + "\n")
	b.WriteString("Notes:    " + valueOrDash(m.entry.Notes) + "\n")

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("ENTRY", strings.TrimRight(b.String(), "\n"),
		"space: reveal │ c: copy password │ u: copy user │ e: edit │ d: delete │ esc: back")
}
