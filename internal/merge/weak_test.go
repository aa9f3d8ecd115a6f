package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordWeakness(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{"", "Too short"},
		{"abc12!", "Too short"},
		{"abcdefghij", "Only letters"},
		{"1234567890", "Only numbers"},
		{"abc123def456", "No symbols"},
		{"abc123!def", ""},
		{"пароль-надёжный", ""},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordWeakness(tt.password))
			assert.Equal(t, tt.want != "", IsWeakPassword(tt.password))
		})
	}
}

func TestWeaknessLabel(t *testing.T) {
	assert.Equal(t, "[Weak: Only numbers]", WeaknessLabel("0123456789"))
	assert.Empty(t, WeaknessLabel("c0rrect-h0rse"))
}
