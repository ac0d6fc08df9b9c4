package book_appointment

import (
	"context"
	"time"

	"github.com/umurava/maternalcare-booking/internal/directory"
	"github.com/umurava/maternalcare-booking/internal/domain"
	"github.com/umurava/maternalcare-booking/internal/notify"
	"github.com/umurava/maternalcare-booking/internal/slots"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

// ReservationRepository is the storage surface the use case needs.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListBookedTimes(ctx context.Context, facilityID int64, date time.Time) ([]types.TimeString, error)
}

// FacilityDirectory resolves facility ids against the catalog.
type FacilityDirectory interface {
	GetByID(id int64) (*directory.Facility, error)
}

// SlotResolver validates a requested time against the effective slot
// set for a facility and appointment type.
type SlotResolver interface {
	Validate(slot types.TimeString, facilityID int64, appointmentType domain.AppointmentType, bookedTimes []types.TimeString) (slots.Validation, error)
	Available(facilityID int64, appointmentType domain.AppointmentType, bookedTimes []types.TimeString) ([]types.TimeString, error)
	ResolveTemplate(appointmentType domain.AppointmentType) (domain.TypeTemplate, error)
}

// Notifier delivers the booking confirmation.
type Notifier interface {
	BookingConfirmed(contact notify.Contact, res *domain.Reservation)
}

// ContactBook keeps the owner's contact on file so the reminder job can
// reach them long after the request that carried the contact is gone.
type ContactBook interface {
	Upsert(ctx context.Context, ownerRef string, contact notify.Contact) error
}

// TimeProvider supplies the current time, swappable in tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
