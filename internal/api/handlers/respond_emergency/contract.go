package respond_emergency

import (
	"context"

	"github.com/umurava/maternalcare-booking/internal/service/emergencies"
)

type EmergenciesService interface {
	Respond(ctx context.Context, id string, facilityID int64) (*emergencies.EmergencyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
