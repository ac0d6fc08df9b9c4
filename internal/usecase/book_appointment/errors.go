package book_appointment

import (
	"errors"
	"fmt"

	"github.com/umurava/maternalcare-booking/pkg/types"
)

var (
	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrFacilityNotFound is returned when the facility id is not in the catalog.
	ErrFacilityNotFound = errors.New("book_appointment: facility not found")

	// ErrUnknownAppointmentType is returned for an unrecognized appointment type.
	ErrUnknownAppointmentType = errors.New("book_appointment: unknown appointment type")

	// ErrInvalidDate is returned when the requested date is in the past.
	ErrInvalidDate = errors.New("book_appointment: invalid appointment date")

	// ErrSlotNotAvailable is returned when the requested time is not
	// bookable, either because it is outside the effective slot set or
	// because another booking holds it.
	ErrSlotNotAvailable = errors.New("book_appointment: slot is not available")

	// ErrStorageUnavailable is returned for transient storage failures,
	// kept distinct from ErrSlotNotAvailable so a timeout is never
	// reported as a conflict.
	ErrStorageUnavailable = errors.New("book_appointment: storage unavailable")

	// ErrInternal is returned for unexpected failures.
	ErrInternal = errors.New("book_appointment: internal error")
)

// SlotUnavailableError carries the remaining availability alongside the
// conflict, so callers can suggest alternatives. It unwraps to
// ErrSlotNotAvailable.
type SlotUnavailableError struct {
	Message        string
	AvailableSlots []types.TimeString
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("%v: %s", ErrSlotNotAvailable, e.Message)
}

func (e *SlotUnavailableError) Unwrap() error {
	return ErrSlotNotAvailable
}
