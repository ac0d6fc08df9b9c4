package contact

import "errors"

var (
	// ErrContactNotFound is returned when no contact is on file for the
	// owner reference.
	ErrContactNotFound = errors.New("contact.repository: contact not found")

	// ErrBuildQuery is returned when SQL construction fails.
	ErrBuildQuery = errors.New("contact.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("contact.repository: failed to execute query")

	// ErrScanRow is returned when result scanning fails.
	ErrScanRow = errors.New("contact.repository: failed to scan row")
)
