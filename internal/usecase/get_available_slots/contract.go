package get_available_slots

import (
	"context"
	"time"

	"github.com/umurava/maternalcare-booking/internal/directory"
	"github.com/umurava/maternalcare-booking/internal/domain"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

// ReservationRepository is the storage surface the use case needs.
type ReservationRepository interface {
	ListBookedTimes(ctx context.Context, facilityID int64, date time.Time) ([]types.TimeString, error)
}

// FacilityDirectory resolves facility ids against the catalog.
type FacilityDirectory interface {
	GetByID(id int64) (*directory.Facility, error)
}

// SlotResolver produces the effective and available slot sets.
type SlotResolver interface {
	EffectiveSlots(facilityID int64, appointmentType domain.AppointmentType) ([]types.TimeString, error)
	Available(facilityID int64, appointmentType domain.AppointmentType, bookedTimes []types.TimeString) ([]types.TimeString, error)
	ResolveTemplate(appointmentType domain.AppointmentType) (domain.TypeTemplate, error)
	AllSlotsForFacility(facilityID int64) ([]types.TimeString, error)
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
