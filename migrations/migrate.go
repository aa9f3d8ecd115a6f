// Package migrations embeds the goose schema migrations of the server
// (PostgreSQL) and client (SQLite) databases.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// goose keeps its dialect and base FS in package state.
var gooseMu sync.Mutex

// MigratePostgres applies the server blob schema.
func MigratePostgres(db *sql.DB) error {
	return migrate(db, "pgx", "postgres")
}

// MigrateSQLite applies the client cache schema.
func MigrateSQLite(db *sql.DB) error {
	return migrate(db, "sqlite3", "sqlite")
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
