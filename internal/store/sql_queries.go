package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	blobsTable       = "blobs"
	blobBackupsTable = "blob_backups"
	localBlobsTable  = "local_blobs"
	settingsTable    = "settings"
)

var (
	psql   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

// ── server blobs (postgres) ─────────────────────────────────────────────────

func buildReadBlobQuery(name string) (string, []any, error) {
	return psql.Select("content").
		From(blobsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

// buildLockBlobQuery locks the row of name for the rest of the transaction.
func buildLockBlobQuery(name string) (string, []any, error) {
	return psql.Select("content", "modified_at").
		From(blobsTable).
		Where(sq.Eq{"name": name}).
		Suffix("FOR UPDATE").
		ToSql()
}

func buildInsertBlobQuery(name string, content []byte, modifiedAt time.Time) (string, []any, error) {
	return psql.Insert(blobsTable).
		Columns("name", "content", "modified_at").
		Values(name, content, modifiedAt).
		ToSql()
}

func buildDeleteBlobQuery(name string) (string, []any, error) {
	return psql.Delete(blobsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

// buildInsertBackupQuery affects no row when backup is already taken.
func buildInsertBackupQuery(backup, name string, content []byte) (string, []any, error) {
	return psql.Insert(blobBackupsTable).
		Columns("name", "blob_name", "content").
		Values(backup, name, content).
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSql()
}

func buildBackupExistsQuery(backup string) (string, []any, error) {
	return psql.Select("1").
		From(blobBackupsTable).
		Where(sq.Eq{"name": backup}).
		ToSql()
}

func buildListBlobsQuery(includeBackups bool) (string, []any, error) {
	query := psql.Select("name").From(blobsTable)
	if includeBackups {
		query = query.Suffix("UNION ALL SELECT name FROM " + blobBackupsTable)
	}
	return query.ToSql()
}

// ── client cache (sqlite) ───────────────────────────────────────────────────

func buildGetLocalBlobQuery(name string) (string, []any, error) {
	return sqlite.Select("content").
		From(localBlobsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildPutLocalBlobQuery(name, content string, updatedAt time.Time) (string, []any, error) {
	return sqlite.Insert(localBlobsTable).
		Columns("name", "content", "updated_at").
		Values(name, content, updatedAt).
		Suffix("ON CONFLICT (name) DO UPDATE SET content = excluded.content, updated_at = excluded.updated_at").
		ToSql()
}

func buildRemoveLocalBlobQuery(name string) (string, []any, error) {
	return sqlite.Delete(localBlobsTable).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildGetSettingQuery(key string) (string, []any, error) {
	return sqlite.Select("value").
		From(settingsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildSetSettingQuery(key, value string) (string, []any, error) {
	return sqlite.Insert(settingsTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value").
		ToSql()
}
