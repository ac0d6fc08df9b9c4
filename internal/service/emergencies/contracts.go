package emergencies

import (
	"context"

	"github.com/umurava/maternalcare-booking/internal/domain"
)

// EmergencyRepository is the storage surface the service needs.
type EmergencyRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Emergency, error)
	MarkResponded(ctx context.Context, id string, facilityID int64) error
	Delete(ctx context.Context, id string) error
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
