package dispatch_emergency

import (
	"context"

	dispatchEmergency "github.com/umurava/maternalcare-booking/internal/usecase/dispatch_emergency"
)

type DispatchEmergencyUseCase interface {
	Execute(ctx context.Context, req *dispatchEmergency.Request) (*dispatchEmergency.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
