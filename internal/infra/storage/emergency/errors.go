package emergency

import "errors"

var (
	// ErrEmergencyNotFound is returned when no record matches the id.
	ErrEmergencyNotFound = errors.New("emergency.repository: emergency not found")

	// ErrAlreadyResponded is returned when the conditional respond
	// update matches no pending row: another facility got there first,
	// or the record is gone.
	ErrAlreadyResponded = errors.New("emergency.repository: emergency no longer pending")

	// ErrBuildQuery is returned when SQL construction fails.
	ErrBuildQuery = errors.New("emergency.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("emergency.repository: failed to execute query")

	// ErrScanRow is returned when result scanning fails.
	ErrScanRow = errors.New("emergency.repository: failed to scan row")
)
