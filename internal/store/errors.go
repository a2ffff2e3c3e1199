package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when a lookup, update or delete targets an
	// id that has no matching row.
	ErrUserNotFound = errors.New("user not found")

	// ErrMalformedUserID is returned when the supplied id cannot be a user
	// identifier at all. The database is not queried in that case.
	ErrMalformedUserID = errors.New("malformed user id")

	// ErrConstraintViolation is returned when the database rejects a write
	// because a column constraint (NOT NULL, CHECK, PRIMARY KEY) failed.
	ErrConstraintViolation = errors.New("user constraint violation")

	// ErrUnsupportedDSN is returned when the configured DSN does not select
	// any of the supported database drivers.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan user row")

	// ErrScanningRows wraps the error reported by rows.Err after a multi-row
	// result has been iterated.
	ErrScanningRows = errors.New("failed to scan user rows")
)
