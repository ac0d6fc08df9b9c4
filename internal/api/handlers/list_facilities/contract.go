package list_facilities

import "github.com/umurava/maternalcare-booking/internal/directory"

type FacilityDirectory interface {
	GetAll() []directory.Facility
	Search(query string) []directory.Facility
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
