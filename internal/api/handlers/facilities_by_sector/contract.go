package facilities_by_sector

import "github.com/umurava/maternalcare-booking/internal/directory"

type FacilityDirectory interface {
	GetBySector(district, sector string) []directory.SectorMatch
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
