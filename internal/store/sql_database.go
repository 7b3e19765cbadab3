package store

import (
	"database/sql"
	"strings"

	"github.com/bishtbros/ledger/internal/logger"
	"github.com/bishtbros/ledger/migrations"
)

// DB wraps the shared *sql.DB handle together with the dialect it was opened
// under. Repositories use the dialect only indirectly (all queries are
// written against the common PostgreSQL/SQLite subset); Migrate needs it to
// pick the right embedded migration set.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate brings the schema up to date for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// isUniqueViolation reports whether err is a unique-constraint violation on
// either backend: pgerrcode 23505 for PostgreSQL, the "UNIQUE constraint
// failed" message for SQLite.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if postgresError(err) == uniqueViolationCode {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isSerializationFailure reports whether err is a PostgreSQL serialization
// conflict (pgerrcode 40001). Such transactions are safe to retry from the
// top. SQLite never raises it: its single-writer model serializes writers on
// its own.
func isSerializationFailure(err error) bool {
	if err == nil {
		return false
	}
	return postgresError(err) == serializationFailureCode
}
