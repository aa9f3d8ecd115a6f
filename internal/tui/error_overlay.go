package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-web/models"
)

// renderStatusErrors lists the session's status messages, newest first.
func renderStatusErrors(errs []models.StatusError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	for _, e := range errs {
		b.WriteString(errorStyle.Render("! " + e.Message))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("x: dismiss newest"))
	return overlayBoxStyle.Render(b.String())
}
