package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-web/internal/config"
	"github.com/MKhiriev/go-pass-web/internal/logger"
)

// ClientStorages groups all client-side storages into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// Cache holds the last known encrypted blob per credential hash.
	Cache LocalCache
	// Settings holds client preferences.
	Settings Settings

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.CacheDSN, creating the database
//     file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires [LocalCache] and [Settings] to the connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.CacheDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Cache:    NewLocalCache(db, logger),
		Settings: NewSettings(db),
		db:       db,
	}, nil
}

// Close closes the underlying database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
