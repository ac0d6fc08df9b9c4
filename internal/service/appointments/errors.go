package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when no reservation matches.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied is returned when the caller does not own the reservation.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the reservation is not in a
	// cancellable state.
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrAlreadyFinalized is returned when a completed appointment is
	// being rescheduled.
	ErrAlreadyFinalized = errors.New("appointment already completed")

	// ErrSlotNotAvailable is returned when the reschedule target slot is
	// taken or outside the slot set.
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInvalidStatus is returned for an unrecognized status filter,
	// and when a reschedule targets a reservation whose status forbids it.
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("service: internal error")
)
