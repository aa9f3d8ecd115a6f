package store

import (
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-pass-web/internal/logger"
)

// DB is a database handle together with the dialect specific pieces the
// storages need.
type DB struct {
	*sql.DB
	isTransient func(error) bool
	migrate     func(*sql.DB) error
	logger      *logger.Logger
}

// Migrate applies the embedded schema migrations for the dialect of db.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return errors.New("no migrations registered for database")
	}
	return db.migrate(db.DB)
}

// retryable reports whether err is worth another attempt.
func (db *DB) retryable(err error) bool {
	return db.isTransient != nil && db.isTransient(err)
}
