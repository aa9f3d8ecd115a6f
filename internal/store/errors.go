package store

import "errors"

// Sentinel errors returned by blob storages to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidName is returned when a name does not resolve to a location
	// directly inside the storage root, or when it addresses a backup.
	ErrInvalidName = errors.New("invalid blob name")

	// ErrBlocked is returned when a write would create a brand-new blob and
	// creation is not allowed.
	ErrBlocked = errors.New("creating a new blob is blocked")

	// ErrNotFound is returned by Read and Delete when no blob exists under
	// the requested name.
	ErrNotFound = errors.New("blob not found")

	// ErrExists is returned when the final create step of a write finds a
	// blob that appeared after the old one was moved away.
	ErrExists = errors.New("blob already exists")

	// ErrIO wraps failures of the underlying storage medium.
	ErrIO = errors.New("storage i/o error")

	// ErrNoFreeBackupName is returned when no unused backup tag could be
	// found for a blob.
	ErrNoFreeBackupName = errors.New("no free backup name")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL-backed storages when a SQL-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrOpeningDatabase is returned when a database cannot be opened or
	// does not answer a ping.
	ErrOpeningDatabase = errors.New("error opening database")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
