package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	postgresMaxOpenConns    = 10
	postgresMaxIdleConns    = 4
	postgresConnMaxIdleTime = 5 * time.Minute
)

// NewConnectPostgres opens the blob database through the pgx stdlib driver
// and checks that it answers.
func NewConnectPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error opening blob database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}

	conn.SetMaxOpenConns(postgresMaxOpenConns)
	conn.SetMaxIdleConns(postgresMaxIdleConns)
	conn.SetConnMaxIdleTime(postgresConnMaxIdleTime)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("blob database does not answer")
		conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpeningDatabase, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to blob database")

	return &DB{
		DB:          conn,
		logger:      log,
		isTransient: isTransientPgError,
		migrate:     migrations.MigratePostgres,
	}, nil
}
