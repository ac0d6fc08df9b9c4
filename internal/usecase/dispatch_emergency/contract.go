package dispatch_emergency

import (
	"context"

	"github.com/umurava/maternalcare-booking/internal/directory"
	"github.com/umurava/maternalcare-booking/internal/domain"
	"github.com/umurava/maternalcare-booking/internal/geo"
)

// EmergencyRepository persists dispatch records.
type EmergencyRepository interface {
	Create(ctx context.Context, e *domain.Emergency) (*domain.Emergency, error)
}

// FacilityRanker selects the emergency-capable facilities to alert.
type FacilityRanker interface {
	NearestEmergency(lat, lng float64, limit int, hasLocation bool) ([]geo.RankedFacility, error)
}

// Notifier alerts a facility about the emergency.
type Notifier interface {
	EmergencyDispatch(facility directory.Facility, e *domain.Emergency)
}

// Logger is the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
