package store

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/MKhiriev/go-pass-web/internal/logger"
	"github.com/MKhiriev/go-pass-web/internal/utils"
	"github.com/jackc/pgerrcode"
)

const maxTxAttempts = 3

// postgresBlobStorage keeps blobs in the blobs table and backups in
// blob_backups. Each write or delete runs in one transaction that locks the
// affected rows, and is retried when the failure is transient.
type postgresBlobStorage struct {
	db     *DB
	opts   BlobOptions
	logger *logger.Logger
}

// NewPostgresBlobStorage returns a [BlobStorage] on top of a migrated db.
func NewPostgresBlobStorage(db *DB, opts BlobOptions, log *logger.Logger) BlobStorage {
	return &postgresBlobStorage{db: db, opts: opts, logger: log}
}

type blobRow struct {
	content    []byte
	modifiedAt time.Time
}

// Resolve implements [BlobStorage].
func (s *postgresBlobStorage) Resolve(name string) (string, error) {
	return resolveName(virtualRoot, name)
}

// Read implements [BlobStorage].
func (s *postgresBlobStorage) Read(ctx context.Context, name string) (io.ReadCloser, error) {
	log := logger.FromContextOr(ctx, s.logger)

	if _, err := resolveTarget(virtualRoot, name); err != nil {
		return nil, err
	}

	query, args, err := buildReadBlobQuery(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var content []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		log.Err(err).Str("func", "*postgresBlobStorage.Read").Str("name", utils.ShortHash(name)).Msg("failed to read blob")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return io.NopCloser(bytes.NewReader(content)), nil
}

// Write implements [BlobStorage].
func (s *postgresBlobStorage) Write(ctx context.Context, req WriteRequest) error {
	if _, err := resolveTarget(virtualRoot, req.Name); err != nil {
		return err
	}
	if req.PreviousName != "" {
		if _, err := resolveTarget(virtualRoot, req.PreviousName); err != nil {
			return err
		}
	}

	content, err := io.ReadAll(req.Content)
	if err != nil {
		return fmt.Errorf("%w: read content: %v", ErrIO, err)
	}

	return s.inTx(ctx, "*postgresBlobStorage.Write", func(tx *sql.Tx) error {
		current, err := s.lock(ctx, tx, req.Name)
		if err != nil {
			return err
		}

		var previous *blobRow
		if req.PreviousName != "" && req.PreviousName != req.Name {
			if previous, err = s.lock(ctx, tx, req.PreviousName); err != nil {
				return err
			}
		}

		if current == nil && previous == nil && !req.AllowCreate {
			return fmt.Errorf("%w: %s", ErrBlocked, req.Name)
		}

		if previous != nil {
			if err := s.retire(ctx, tx, req.PreviousName, previous); err != nil {
				return err
			}
		}
		if current != nil {
			if err := s.retire(ctx, tx, req.Name, current); err != nil {
				return err
			}
		}

		query, args, err := buildInsertBlobQuery(req.Name, content, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if postgresError(err) == pgerrcode.UniqueViolation {
				return fmt.Errorf("%w: %s", ErrExists, req.Name)
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}

// Delete implements [BlobStorage].
func (s *postgresBlobStorage) Delete(ctx context.Context, name string) error {
	if _, err := resolveTarget(virtualRoot, name); err != nil {
		return err
	}

	return s.inTx(ctx, "*postgresBlobStorage.Delete", func(tx *sql.Tx) error {
		current, err := s.lock(ctx, tx, name)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return s.retire(ctx, tx, name, current)
	})
}

// List implements [BlobStorage].
func (s *postgresBlobStorage) List(ctx context.Context, includeBackups bool) ([]string, error) {
	log := logger.FromContextOr(ctx, s.logger)

	query, args, err := buildListBlobsQuery(includeBackups)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postgresBlobStorage.List").Msg("failed to list blobs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	names := make([]string, 0, 16)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	sort.Strings(names)
	return names, nil
}

// Close implements [BlobStorage].
func (s *postgresBlobStorage) Close() error {
	return s.db.Close()
}

// lock returns the row of name locked for update, or nil when there is none.
func (s *postgresBlobStorage) lock(ctx context.Context, tx *sql.Tx, name string) (*blobRow, error) {
	query, args, err := buildLockBlobQuery(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row blobRow
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&row.content, &row.modifiedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return &row, nil
}

// retire backs up (when enabled) and deletes the locked row of name.
func (s *postgresBlobStorage) retire(ctx context.Context, tx *sql.Tx, name string, row *blobRow) error {
	if s.opts.Backups {
		if err := s.backup(ctx, tx, name, row); err != nil {
			return err
		}
	}

	query, args, err := buildDeleteBlobQuery(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *postgresBlobStorage) backup(ctx context.Context, tx *sql.Tx, name string, row *blobRow) error {
	taken := func(candidate string) (bool, error) {
		query, args, err := buildBackupExistsQuery(candidate)
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		var one int
		err = tx.QueryRowContext(ctx, query, args...).Scan(&one)
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return true, nil
	}

	modifiedAt := row.modifiedAt
	for {
		backup, err := freeBackupName(name, modifiedAt, taken)
		if err != nil {
			return err
		}

		query, args, err := buildInsertBackupQuery(backup, name, row.content)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 1 {
			s.logger.Debug().Str("func", "*postgresBlobStorage.backup").Str("backup", utils.ShortHash(backup)).Msg("backup created")
			return nil
		}
		// Claimed concurrently; move past it.
		modifiedAt = modifiedAt.Add(backupTagTick)
	}
}

// inTx runs fn in a transaction, retrying transient failures.
func (s *postgresBlobStorage) inTx(ctx context.Context, fnName string, fn func(*sql.Tx) error) error {
	log := logger.FromContextOr(ctx, s.logger)

	for attempt := 1; ; attempt++ {
		err := s.runTx(ctx, fn)
		if err == nil {
			return nil
		}
		if attempt >= maxTxAttempts || !s.db.retryable(err) {
			return err
		}
		log.Warn().Err(err).Str("func", fnName).Int("attempt", attempt).Msg("retrying transaction")
	}
}

func (s *postgresBlobStorage) runTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
