package domain

import (
	"time"

	"github.com/umurava/maternalcare-booking/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusScheduled ReservationStatus = "scheduled"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusNoShow    ReservationStatus = "no_show"
)

// Reservation binds a facility, a calendar date and an HH:MM start time
// to an owner. At most one non-cancelled reservation may exist per
// (facility, date, time) key; storage enforces this with a partial
// unique index.
type Reservation struct {
	ID              int64
	OwnerRef        string
	FacilityID      int64
	FacilityName    string
	Date            time.Time // calendar date, clock portion ignored
	StartTime       types.TimeString
	AppointmentType AppointmentType
	Notes           *string
	Status          ReservationStatus
	ReminderSent    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the reservation still occupies its slot key.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsFinalized reports whether the reservation reached a terminal state
// that must not be mutated further.
func (r *Reservation) IsFinalized() bool {
	return r.Status == StatusCompleted
}

// CanBeCancelled reports whether a cancellation is still meaningful.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusScheduled
}

// ValidStatus reports whether s is one of the recognized lifecycle states.
func ValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}
