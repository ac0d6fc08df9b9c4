package dispatch_emergency

import "errors"

var (
	// ErrInvalidInput is returned when patient name or phone is missing.
	ErrInvalidInput = errors.New("dispatch_emergency: invalid input data")

	// ErrInvalidLocation is returned for out-of-range coordinates.
	ErrInvalidLocation = errors.New("dispatch_emergency: invalid location")

	// ErrNoFacilities is returned when no emergency-capable facility is known.
	ErrNoFacilities = errors.New("dispatch_emergency: no nearby facilities found")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("dispatch_emergency: internal error")
)
