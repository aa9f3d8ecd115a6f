package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/utils"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

// fileBlobStorage is the flat-directory implementation of [BlobStorage].
// Each blob is one regular file directly inside root. Backups are hard links
// created next to the blob before it is unlinked, so a backup can never
// silently replace another one.
type fileBlobStorage struct {
	root   string
	opts   BlobOptions
	logger *logger.Logger
}

// NewFileBlobStorage creates root if needed and returns a [BlobStorage]
// keeping blobs as files inside it.
func NewFileBlobStorage(root string, opts BlobOptions, log *logger.Logger) (BlobStorage, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, dirPerm); err != nil {
		log.Err(err).Str("func", "NewFileBlobStorage").Str("root", root).Msg("error creating storage root")
		return nil, fmt.Errorf("%w: create root: %v", ErrIO, err)
	}

	log.Debug().Str("func", "NewFileBlobStorage").Str("root", root).Msg("file blob storage ready")
	return &fileBlobStorage{root: root, opts: opts, logger: log}, nil
}

// UniqueDirectory returns a fresh sub-directory name of root, used when
// every process run must start from an empty store.
func UniqueDirectory(root string) string {
	return filepath.Join(root, strconv.FormatInt(time.Now().UnixNano(), 10))
}

// Resolve implements [BlobStorage].
func (s *fileBlobStorage) Resolve(name string) (string, error) {
	return resolveName(s.root, name)
}

// Read implements [BlobStorage].
func (s *fileBlobStorage) Read(ctx context.Context, name string) (io.ReadCloser, error) {
	path, err := resolveTarget(s.root, name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("%w: open: %v", ErrIO, err)
	}

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return f, nil
}

// Write implements [BlobStorage].
func (s *fileBlobStorage) Write(ctx context.Context, req WriteRequest) error {
	log := logger.FromContextOr(ctx, s.logger)

	path, err := resolveTarget(s.root, req.Name)
	if err != nil {
		return err
	}

	var previousPath string
	if req.PreviousName != "" {
		if previousPath, err = resolveTarget(s.root, req.PreviousName); err != nil {
			return err
		}
	}

	exists, err := s.exists(path)
	if err != nil {
		return err
	}
	previousExists := false
	if previousPath != "" {
		if previousExists, err = s.exists(previousPath); err != nil {
			return err
		}
	}

	if !exists && !previousExists && !req.AllowCreate {
		return fmt.Errorf("%w: %s", ErrBlocked, req.Name)
	}

	if previousExists {
		if err := s.retire(req.PreviousName, previousPath); err != nil {
			return err
		}
		log.Debug().Str("func", "*fileBlobStorage.Write").Msg("previous blob retired")
	}

	// The previous name may equal the name, so check again.
	if exists, err = s.exists(path); err != nil {
		return err
	}
	if exists {
		if err := s.retire(req.Name, path); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrExists, req.Name)
		}
		return fmt.Errorf("%w: create: %v", ErrIO, err)
	}

	if _, err := io.Copy(f, req.Content); err != nil {
		f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("%w: write: %v", ErrIO, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("%w: sync: %v", ErrIO, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("%w: close: %v", ErrIO, err)
	}

	return nil
}

// Delete implements [BlobStorage].
func (s *fileBlobStorage) Delete(ctx context.Context, name string) error {
	path, err := resolveTarget(s.root, name)
	if err != nil {
		return err
	}

	exists, err := s.exists(path)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return s.retire(name, path)
}

// List implements [BlobStorage].
func (s *fileBlobStorage) List(ctx context.Context, includeBackups bool) ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("%w: read dir: %v", ErrIO, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if !includeBackups && IsBackupName(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}

// Close implements [BlobStorage].
func (s *fileBlobStorage) Close() error {
	return nil
}

func (s *fileBlobStorage) exists(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: stat: %v", ErrIO, err)
	}
	if !info.Mode().IsRegular() {
		return false, fmt.Errorf("%w: %s is not a regular file", ErrInvalidName, filepath.Base(path))
	}
	return true, nil
}

// retire backs up (when enabled) and removes the blob at path.
func (s *fileBlobStorage) retire(name, path string) error {
	if s.opts.Backups {
		if err := s.backup(name, path); err != nil {
			return err
		}
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: remove: %v", ErrIO, err)
	}
	return nil
}

// backup links the blob to a free backup name derived from its
// modification time. os.Link fails on an existing target, which closes the
// race between choosing a name and claiming it.
func (s *fileBlobStorage) backup(name, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: stat: %v", ErrIO, err)
	}

	modTime := info.ModTime()
	for {
		backup, err := freeBackupName(name, modTime, func(candidate string) (bool, error) {
			return s.exists(filepath.Join(s.root, candidate))
		})
		if err != nil {
			return err
		}

		err = os.Link(path, filepath.Join(s.root, backup))
		if err == nil {
			s.logger.Debug().Str("func", "*fileBlobStorage.backup").Str("backup", utils.ShortHash(backup)).Msg("backup created")
			return nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: backup: %v", ErrIO, err)
		}
		modTime = modTime.Add(backupTagTick)
	}
}
