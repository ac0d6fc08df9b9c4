package emergencies

import "errors"

var (
	// ErrEmergencyNotFound is returned when no record matches the id.
	ErrEmergencyNotFound = errors.New("emergency not found")

	// ErrAccessDenied is returned when the caller did not raise the alert.
	ErrAccessDenied = errors.New("access denied")

	// ErrFacilityNotAlerted is returned when a facility responds to an
	// alert it was never paged for.
	ErrFacilityNotAlerted = errors.New("facility was not alerted for this emergency")

	// ErrAlreadyResponded is returned when another facility already took
	// the emergency.
	ErrAlreadyResponded = errors.New("emergency already responded to")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("service: internal error")
)
