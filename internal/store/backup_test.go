package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── backup names ────────────────────────────────────────────────────────────

// TestBackupTag checks the 21 digit layout: seconds plus 100ns ticks, UTC.
func TestBackupTag(t *testing.T) {
	ts := time.Date(2024, 3, 5, 7, 8, 9, 123456789, time.FixedZone("X", 3*3600))

	tag := backupTag(ts)

	assert.Equal(t, "202403050408091234567", tag)
	assert.Len(t, tag, 21)
	assert.True(t, IsBackupName(backupName("abc", ts)))
}

func TestIsBackupName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"abc.202403050408091234567", true},
		{"abc", false},
		{"abc.20240305040809123456", false},
		{"abc.2024030504080912345678", false},
		{"abc.20240305040809123456x", false},
		{"first.txt", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBackupName(tt.name))
		})
	}
}

// TestFreeBackupName_SkipsTaken verifies the tag advances in 100ns steps
// past names that already exist.
func TestFreeBackupName_SkipsTaken(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	taken := map[string]bool{
		backupName("n", ts):                      true,
		backupName("n", ts.Add(backupTagTick)):   true,
		backupName("n", ts.Add(3*backupTagTick)): true,
	}

	got, err := freeBackupName("n", ts, func(c string) (bool, error) { return taken[c], nil })

	require.NoError(t, err)
	assert.Equal(t, backupName("n", ts.Add(2*backupTagTick)), got)
}

func TestFreeBackupName_Errors(t *testing.T) {
	ts := time.Now()

	t.Run("exhausted", func(t *testing.T) {
		_, err := freeBackupName("n", ts, func(string) (bool, error) { return true, nil })
		assert.ErrorIs(t, err, ErrNoFreeBackupName)
	})

	t.Run("existence check failure", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := freeBackupName("n", ts, func(string) (bool, error) { return false, boom })
		assert.ErrorIs(t, err, boom)
	})
}

// ── name resolution ─────────────────────────────────────────────────────────

var badFileNames = []string{"../a", "..\\b", "c/d", "e\\f", "g/../../h"}

func TestResolveName(t *testing.T) {
	root := t.TempDir()

	t.Run("accepts plain names", func(t *testing.T) {
		for _, name := range []string{"first.txt", "second.png", "third", "zero", "a..b", ".hidden"} {
			got, err := resolveName(root, name)
			require.NoError(t, err, name)
			assert.Equal(t, filepath.Join(root, name), got)
		}
	})

	t.Run("rejects traversal", func(t *testing.T) {
		for _, name := range append(badFileNames, "", ".", "..", "x\x00y") {
			_, err := resolveName(root, name)
			assert.ErrorIs(t, err, ErrInvalidName, "%q", name)
		}
	})

	t.Run("root spelled with trailing separator", func(t *testing.T) {
		got, err := resolveName(root+string(filepath.Separator), "zero")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "zero"), got)
	})
}

func TestResolveTarget_RejectsBackups(t *testing.T) {
	_, err := resolveTarget(virtualRoot, "abc.202403050408091234567")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = resolveTarget(virtualRoot, "abc")
	assert.NoError(t, err)
}
