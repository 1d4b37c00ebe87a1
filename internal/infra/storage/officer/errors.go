package officer

import "errors"

var (
	// ErrOfficerNotFound is returned when no officer matches the username
	ErrOfficerNotFound = errors.New("officer.repository: officer not found")

	// ErrBuildQuery is returned when the SQL query cannot be built
	ErrBuildQuery = errors.New("officer.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute
	ErrExecQuery = errors.New("officer.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("officer.repository: failed to scan row")
)
