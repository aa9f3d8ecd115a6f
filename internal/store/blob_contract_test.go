package store

import (
	"context"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type goodFile struct {
	name    string
	content string
}

var goodFiles = []goodFile{
	{"first.txt", "hello\nthere"},
	{"second.png", "hello\r\nthere"},
	{"third", "\t\x00\\"},
	{"zero", ""},
}

func goodFileNames() []string {
	names := make([]string, 0, len(goodFiles))
	for _, f := range goodFiles {
		names = append(names, f.name)
	}
	sort.Strings(names)
	return names
}

type storageFactory func(t *testing.T, opts BlobOptions) BlobStorage

func write(t *testing.T, s BlobStorage, name, previous, content string, allowCreate bool) error {
	t.Helper()
	return s.Write(context.Background(), WriteRequest{
		Name:         name,
		PreviousName: previous,
		Content:      strings.NewReader(content),
		AllowCreate:  allowCreate,
	})
}

func readString(t *testing.T, s BlobStorage, name string) string {
	t.Helper()
	rc, err := s.Read(context.Background(), name)
	require.NoError(t, err, name)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

func listAll(t *testing.T, s BlobStorage) []string {
	t.Helper()
	names, err := s.List(context.Background(), true)
	require.NoError(t, err)
	return names
}

// testBlobStorageContract runs the behaviour every backend must share.
func testBlobStorageContract(t *testing.T, newStorage storageFactory) {
	ctx := context.Background()

	t.Run("create read list", func(t *testing.T) {
		s := newStorage(t, BlobOptions{})
		for _, f := range goodFiles {
			require.NoError(t, write(t, s, f.name, "", f.content, true))
		}
		for _, f := range goodFiles {
			assert.Equal(t, f.content, readString(t, s, f.name))
		}

		names, err := s.List(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, goodFileNames(), names)
	})

	t.Run("bad names", func(t *testing.T) {
		s := newStorage(t, BlobOptions{Backups: true})
		for _, name := range badFileNames {
			assert.ErrorIs(t, write(t, s, name, "", "x", true), ErrInvalidName, name)
			assert.ErrorIs(t, write(t, s, "ok", name, "x", true), ErrInvalidName, name)
			_, err := s.Read(ctx, name)
			assert.ErrorIs(t, err, ErrInvalidName, name)
			assert.ErrorIs(t, s.Delete(ctx, name), ErrInvalidName, name)
			_, err = s.Resolve(name)
			assert.ErrorIs(t, err, ErrInvalidName, name)
		}
		assert.Empty(t, listAll(t, s))
	})

	t.Run("missing blobs", func(t *testing.T) {
		s := newStorage(t, BlobOptions{Backups: true})
		_, err := s.Read(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, s.Delete(ctx, "missing"), ErrNotFound)
	})

	t.Run("block new", func(t *testing.T) {
		s := newStorage(t, BlobOptions{Backups: true})
		for _, f := range goodFiles {
			assert.ErrorIs(t, write(t, s, f.name, "", f.content, false), ErrBlocked)
		}
		assert.Empty(t, listAll(t, s))

		require.NoError(t, write(t, s, "zero", "", "", true))
		assert.NoError(t, write(t, s, "zero", "", "updated", false))
		assert.Equal(t, "updated", readString(t, s, "zero"))
	})

	t.Run("backups on update and delete", func(t *testing.T) {
		s := newStorage(t, BlobOptions{Backups: true})
		for _, f := range goodFiles {
			require.NoError(t, write(t, s, f.name, "", f.content, true))
		}
		for round := range 2 {
			for _, f := range goodFiles {
				require.NoError(t, write(t, s, f.name, "", f.content+strings.Repeat("!", round+1), false))
			}
		}
		assert.Len(t, listAll(t, s), 3*len(goodFiles))

		names, err := s.List(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, goodFileNames(), names)

		for _, f := range goodFiles {
			require.NoError(t, s.Delete(ctx, f.name))
		}
		all := listAll(t, s)
		assert.Len(t, all, 3*len(goodFiles))
		for _, name := range all {
			assert.True(t, IsBackupName(name), name)
		}

		names, err = s.List(ctx, false)
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("backups are not addressable", func(t *testing.T) {
		s := newStorage(t, BlobOptions{Backups: true})
		require.NoError(t, write(t, s, "first.txt", "", "one", true))
		require.NoError(t, write(t, s, "first.txt", "", "two", true))

		var backup string
		for _, name := range listAll(t, s) {
			if IsBackupName(name) {
				backup = name
			}
		}
		require.NotEmpty(t, backup)

		_, err := s.Read(ctx, backup)
		assert.ErrorIs(t, err, ErrInvalidName)
		assert.ErrorIs(t, s.Delete(ctx, backup), ErrInvalidName)
		assert.ErrorIs(t, write(t, s, backup, "", "x", true), ErrInvalidName)
	})

	t.Run("without backups nothing is kept", func(t *testing.T) {
		s := newStorage(t, BlobOptions{})
		require.NoError(t, write(t, s, "a", "", "1", true))
		require.NoError(t, write(t, s, "a", "", "2", true))
		assert.Equal(t, []string{"a"}, listAll(t, s))

		require.NoError(t, s.Delete(ctx, "a"))
		assert.Empty(t, listAll(t, s))
	})

	t.Run("rename same names", func(t *testing.T) {
		s := newStorage(t, BlobOptions{Backups: true})
		require.NoError(t, write(t, s, "same", "", "old", true))

		require.NoError(t, write(t, s, "same", "same", "new", false))

		assert.Len(t, listAll(t, s), 2)
		assert.Equal(t, "new", readString(t, s, "same"))
	})

	t.Run("rename different names", func(t *testing.T) {
		s := newStorage(t, BlobOptions{Backups: true})
		require.NoError(t, write(t, s, "before", "", "old", true))

		// The new name does not exist yet, but the previous one does, so
		// the write is not a creation.
		require.NoError(t, write(t, s, "after", "before", "new", false))

		all := listAll(t, s)
		assert.Len(t, all, 2)
		assert.Contains(t, all, "after")
		assert.Equal(t, "new", readString(t, s, "after"))
		_, err := s.Read(ctx, "before")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rename onto existing name", func(t *testing.T) {
		s := newStorage(t, BlobOptions{Backups: true})
		require.NoError(t, write(t, s, "from", "", "a", true))
		require.NoError(t, write(t, s, "to", "", "b", true))

		require.NoError(t, write(t, s, "to", "from", "c", false))

		assert.Len(t, listAll(t, s), 3)
		names, err := s.List(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"to"}, names)
	})
}
