package cancel_emergency

import "context"

type EmergenciesService interface {
	Cancel(ctx context.Context, id, ownerRef string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
