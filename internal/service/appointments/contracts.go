package appointments

import (
	"context"
	"time"

	"github.com/umurava/maternalcare-booking/internal/domain"
	"github.com/umurava/maternalcare-booking/internal/notify"
	"github.com/umurava/maternalcare-booking/internal/slots"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

// ReservationRepository is the storage surface the service needs.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByOwner(ctx context.Context, ownerRef string, status *domain.ReservationStatus) ([]*domain.Reservation, error)
	ListBookedTimes(ctx context.Context, facilityID int64, date time.Time) ([]types.TimeString, error)
	Update(ctx context.Context, res *domain.Reservation) error
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Delete(ctx context.Context, id int64) error
}

// SlotResolver re-validates the slot on reschedule.
type SlotResolver interface {
	Validate(slot types.TimeString, facilityID int64, appointmentType domain.AppointmentType, bookedTimes []types.TimeString) (slots.Validation, error)
}

// Notifier delivers lifecycle notifications.
type Notifier interface {
	BookingCancelled(contact notify.Contact, res *domain.Reservation)
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
