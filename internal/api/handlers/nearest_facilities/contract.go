package nearest_facilities

import "github.com/umurava/maternalcare-booking/internal/geo"

type FacilityRanker interface {
	Nearest(lat, lng float64, limit int) ([]geo.RankedFacility, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
