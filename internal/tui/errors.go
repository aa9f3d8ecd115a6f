// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-web/internal/app"
	"github.com/MKhiriev/go-pass-web/internal/service"
)

var errPasswordsDiffer = errors.New("passwords do not match")

// humanizeError turns a session error into the text shown on a form.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrInvalidEntry):
		return app.MsgInvalidEntry
	case errors.Is(err, service.ErrEmptyMasterPassword):
		return app.MsgEmptyMasterPassword
	case errors.Is(err, service.ErrEmptyUsername):
		return "A user name is required."
	case errors.Is(err, service.ErrNotLoggedIn):
		return "Not logged in."
	case errors.Is(err, errPasswordsDiffer):
		return "The passwords do not match."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") {
		return "Network unavailable or server unreachable."
	}

	return err.Error()
}
