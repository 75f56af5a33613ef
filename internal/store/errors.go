package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrShipNotFound is returned when a ship lookup, update or delete targets
	// a record that does not exist or is not owned by the requesting user.
	ErrShipNotFound = errors.New("ship was not found")

	// ErrSpotNotFound is returned when a fishing spot query or update targets
	// a record that does not exist.
	ErrSpotNotFound = errors.New("fishing spot was not found")

	// ErrRouteNotFound is returned when a route lookup or delete targets a
	// record that does not exist or, for deletes, is not owned by the
	// requesting operator.
	ErrRouteNotFound = errors.New("route was not found")

	// ErrReportNotFound is returned when a report lookup or status update
	// targets a record that does not exist.
	ErrReportNotFound = errors.New("report was not found")
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

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
