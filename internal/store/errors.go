package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTreeNotFound is returned by the remote repository when no tree with
	// the requested id (or names) exists.
	ErrTreeNotFound = errors.New("tree was not found")

	// ErrLocalTreeNotFound is returned by the device cache when the requested
	// id is not cached.
	ErrLocalTreeNotFound = errors.New("tree is not cached locally")

	// ErrIDAllocationRace is returned when an INSERT collides on the primary
	// key because a concurrent create took the allocated id first. The
	// operation may succeed if repeated from the allocation step.
	ErrIDAllocationRace = errors.New("allocated tree id was taken by a concurrent insert")

	// ErrTreeNotSaved is returned when a write completes without error but
	// affects no rows.
	ErrTreeNotSaved = errors.New("tree was not saved")

	// ErrTemporary marks driver failures that may succeed when retried
	// (lost connection, serialization failure, deadlock).
	ErrTemporary = errors.New("temporary database failure")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
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

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan tree row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan tree rows")
)
