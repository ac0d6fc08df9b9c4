package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrFacilityNotFound is returned when the facility id is not in the catalog.
	ErrFacilityNotFound = errors.New("get_available_slots: facility not found")

	// ErrUnknownAppointmentType is returned for an unrecognized appointment type.
	ErrUnknownAppointmentType = errors.New("get_available_slots: unknown appointment type")

	// ErrInvalidDate is returned when the requested date is in the past.
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrStorageUnavailable is returned for transient storage failures.
	ErrStorageUnavailable = errors.New("get_available_slots: storage unavailable")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
