package tui

import "github.com/MKhiriev/go-pass-web/models"

// sessionEventMsg carries a session event into the Bubble Tea loop.
type sessionEventMsg struct {
	event models.SessionEvent
}

type loginDoneMsg struct {
	err error
}

// opDoneMsg finishes a save, delete or master password change.
type opDoneMsg struct {
	op  string
	err error
}

type copiedMsg struct {
	what string
	err  error
}

type generatedMsg struct {
	password string
	err      error
}

type clearStatusMsg struct{}
