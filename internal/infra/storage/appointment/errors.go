package appointment

import "errors"

var (
	// ErrReservationNotFound is returned when no reservation matches.
	ErrReservationNotFound = errors.New("appointment.repository: reservation not found")

	// ErrSlotTaken is returned when the partial unique index on
	// (facility_id, date, start_time) rejects an insert or update.
	ErrSlotTaken = errors.New("appointment.repository: slot already reserved")

	// ErrStorageUnavailable is returned for timeouts and cancelled
	// contexts, kept distinct from ErrSlotTaken so callers never read a
	// transient failure as a booking conflict.
	ErrStorageUnavailable = errors.New("appointment.repository: storage unavailable")

	// ErrBuildQuery is returned when SQL construction fails.
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when query execution fails.
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when result scanning fails.
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
