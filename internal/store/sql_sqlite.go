package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/migrations"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteInMemory = ":memory:"

// NewConnectSQLite opens the client cache database, creating the file and
// its directory on first use.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if err := ensureSQLiteFile(dsn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("dsn", dsn).Msg("cannot prepare cache file")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening cache database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}
	// sqlite serializes writers anyway; one connection avoids SQLITE_BUSY.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("cache database does not answer")
		conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", dsn).Msg("opened cache database")

	return &DB{
		DB:      conn,
		logger:  log,
		migrate: migrations.MigrateSQLite,
	}, nil
}

func ensureSQLiteFile(path string) error {
	if path == sqliteInMemory {
		return nil
	}

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("create cache file: %w", err)
	}
	return f.Close()
}
