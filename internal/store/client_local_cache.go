package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/utils"
)

// localCache is the SQLite-backed implementation of [LocalCache].
type localCache struct {
	*DB
	logger *logger.Logger
}

// NewLocalCache constructs a [LocalCache] over a migrated SQLite db.
func NewLocalCache(db *DB, logger *logger.Logger) LocalCache {
	return &localCache{DB: db, logger: logger}
}

func (c *localCache) Get(ctx context.Context, name string) (string, bool, error) {
	log := logger.FromContextOr(ctx, c.logger)

	query, args, err := buildGetLocalBlobQuery(name)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var blob string
	err = c.DB.QueryRowContext(ctx, query, args...).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*localCache.Get").Str("name", utils.ShortHash(name)).Msg("failed to read cached blob")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return blob, true, nil
}

func (c *localCache) Put(ctx context.Context, name, blob string) error {
	log := logger.FromContextOr(ctx, c.logger)

	query, args, err := buildPutLocalBlobQuery(name, blob, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := c.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*localCache.Put").Str("name", utils.ShortHash(name)).Msg("failed to cache blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "*localCache.Put").Str("name", utils.ShortHash(name)).Int("size", len(blob)).Msg("blob cached")
	return nil
}

func (c *localCache) Remove(ctx context.Context, name string) error {
	query, args, err := buildRemoveLocalBlobQuery(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := c.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContextOr(ctx, c.logger).Err(err).
			Str("func", "*localCache.Remove").
			Str("name", utils.ShortHash(name)).
			Msg("failed to remove cached blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// settings is the SQLite-backed implementation of [Settings].
type settings struct {
	*DB
}

// NewSettings constructs [Settings] over a migrated SQLite db.
func NewSettings(db *DB) Settings {
	return &settings{DB: db}
}

func (s *settings) Get(ctx context.Context, key string) (string, bool, error) {
	query, args, err := buildGetSettingQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, true, nil
}

func (s *settings) Set(ctx context.Context, key, value string) error {
	query, args, err := buildSetSettingQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
