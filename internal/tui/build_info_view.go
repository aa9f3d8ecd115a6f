// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-pass-web/models"
)

func renderBuildInfoWindow(info models.BuildInfo) string {
	version, date, commit := info.Fields()
	data := fmt.Sprintf("PassWeb client\n\nVersion │ %s\nBuilt   │ %s\nCommit  │ %s", version, date, commit)

	return renderPage("ABOUT", data, "esc / ctrl+b: back")
}
