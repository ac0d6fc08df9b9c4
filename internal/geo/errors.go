package geo

import "errors"

var (
	// ErrInvalidCoordinate is returned for latitudes outside [-90, 90]
	// or longitudes outside [-180, 180].
	ErrInvalidCoordinate = errors.New("geo: invalid coordinate")
)
