package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-web/internal/config"
	"github.com/MKhiriev/go-pass-web/internal/logger"
)

// Storages groups the server-side storages.
type Storages struct {
	Blobs BlobStorage
}

// NewStorages opens the blob backend selected in cfg.Storage.
//
// The file backend roots itself in a fresh sub-directory when
// TestCreateUniqueDirectory is set. With SerializeWrites every backend is
// wrapped with [NewLockedBlobStorage].
func NewStorages(ctx context.Context, cfg *config.ServerConfig, log *logger.Logger) (*Storages, error) {
	log.Info().Str("backend", cfg.Storage.Backend).Msg("creating new storages...")

	opts := BlobOptions{Backups: cfg.Features.BackupFile}

	var (
		blobs BlobStorage
		err   error
	)
	switch cfg.Storage.Backend {
	case config.BackendFile:
		root := cfg.Storage.FilesRoot
		if cfg.Features.TestCreateUniqueDirectory {
			root = UniqueDirectory(root)
		}
		blobs, err = NewFileBlobStorage(root, opts, log)
	case config.BackendBolt:
		blobs, err = NewBoltBlobStorage(cfg.Storage.BoltPath, opts, log)
	case config.BackendPostgres:
		var db *DB
		db, err = NewConnectPostgres(ctx, cfg.Storage.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		blobs = NewPostgresBlobStorage(db, opts, log)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Features.SerializeWrites {
		blobs = NewLockedBlobStorage(blobs)
	}

	return &Storages{Blobs: blobs}, nil
}

// Close releases every storage.
func (s *Storages) Close() error {
	return s.Blobs.Close()
}
