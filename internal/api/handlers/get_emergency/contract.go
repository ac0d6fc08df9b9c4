package get_emergency

import (
	"context"

	"github.com/umurava/maternalcare-booking/internal/service/emergencies"
)

type EmergenciesService interface {
	GetByID(ctx context.Context, id, ownerRef string) (*emergencies.EmergencyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
