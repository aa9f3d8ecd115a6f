package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE of err, or "" when err did not come
// from the server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isTransientPgError reports whether a blob transaction that failed with err
// can be run again from the start: lost connections (class 08), rolled back
// transactions such as serialization failures and deadlocks (class 40), and
// a server that is starting up or shutting down (57P01..57P03).
func isTransientPgError(err error) bool {
	code := postgresError(err)
	switch {
	case code == "":
		return false
	case pgerrcode.IsConnectionException(code), pgerrcode.IsTransactionRollback(code):
		return true
	case code == pgerrcode.AdminShutdown, code == pgerrcode.CrashShutdown, code == pgerrcode.CannotConnectNow:
		return true
	default:
		return false
	}
}
