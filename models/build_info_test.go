package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info BuildInfo
		want string
	}{
		{name: "all set", info: NewBuildInfo("1.4.0", "2026-05-01", "abc123"), want: "1.4.0 (commit abc123, built 2026-05-01)"},
		{name: "development build", info: BuildInfo{}, want: "N/A (commit N/A, built N/A)"},
		{name: "version only", info: BuildInfo{Version: "dev"}, want: "dev (commit N/A, built N/A)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}
