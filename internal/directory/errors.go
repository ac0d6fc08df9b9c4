package directory

import "errors"

var (
	// ErrFacilityNotFound is returned when no facility matches the id.
	ErrFacilityNotFound = errors.New("directory: facility not found")
)
