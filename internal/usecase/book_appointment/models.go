package book_appointment

import (
	"time"

	"github.com/umurava/maternalcare-booking/internal/notify"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

// Request carries the booking parameters. OwnerRef is the opaque
// principal reference supplied by the authentication layer; Contact is
// the delivery address for the confirmation.
type Request struct {
	OwnerRef        string
	FacilityID      int64
	Date            time.Time
	StartTime       types.TimeString
	AppointmentType string
	Notes           *string
	Contact         notify.Contact
}

// Response is the created reservation.
type Response struct {
	ID              int64
	OwnerRef        string
	FacilityID      int64
	FacilityName    string
	Date            time.Time
	StartTime       types.TimeString
	AppointmentType string
	DurationMinutes int
	Status          string
	Notes           *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
