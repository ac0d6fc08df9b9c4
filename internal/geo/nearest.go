package geo

import (
	"fmt"
	"sort"

	"github.com/umurava/maternalcare-booking/internal/directory"
	"github.com/umurava/maternalcare-booking/internal/domain"
)

// RankedFacility pairs a facility with its computed distance from the
// query point. DistanceKm is rounded for display; ranking happens on the
// unrounded value before truncation.
type RankedFacility struct {
	Facility   directory.Facility
	DistanceKm float64
}

const (
	// DefaultLimit is applied when the caller passes limit <= 0.
	DefaultLimit = domain.DefaultNearestLimit
	// MaxLimit is the hard cap on returned facilities.
	MaxLimit = domain.MaxNearestLimit
)

// Ranker ranks directory facilities by great-circle distance.
type Ranker struct {
	dir *directory.Directory
}

// NewRanker creates a Ranker over the given directory.
func NewRanker(dir *directory.Directory) *Ranker {
	return &Ranker{dir: dir}
}

// Nearest returns up to limit facilities sorted by ascending distance
// from (lat, lng). Ties keep catalog insertion order. An empty directory
// yields an empty result, not an error.
func (r *Ranker) Nearest(lat, lng float64, limit int) ([]RankedFacility, error) {
	if err := ValidateCoordinates(lat, lng); err != nil {
		return nil, err
	}
	return rank(r.dir.GetAll(), lat, lng, clampLimit(limit)), nil
}

// NearestEmergency ranks only facilities carrying the Emergency service
// tag. When hasLocation is false the method degrades to the first limit
// emergency-capable facilities in catalog order - an explicit fallback
// for alerts raised without GPS data.
func (r *Ranker) NearestEmergency(lat, lng float64, limit int, hasLocation bool) ([]RankedFacility, error) {
	limit = clampLimit(limit)

	var candidates []directory.Facility
	for _, f := range r.dir.GetAll() {
		if f.HasService(directory.ServiceEmergency) {
			candidates = append(candidates, f)
		}
	}

	if !hasLocation {
		if len(candidates) > limit {
			candidates = candidates[:limit]
		}
		out := make([]RankedFacility, len(candidates))
		for i, f := range candidates {
			out[i] = RankedFacility{Facility: f}
		}
		return out, nil
	}

	if err := ValidateCoordinates(lat, lng); err != nil {
		return nil, err
	}
	return rank(candidates, lat, lng, limit), nil
}

// ValidateCoordinates checks a point against the WGS84 value ranges.
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinate, lat)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinate, lng)
	}
	return nil
}

func rank(facilities []directory.Facility, lat, lng float64, limit int) []RankedFacility {
	type scored struct {
		facility directory.Facility
		exact    float64
	}

	items := make([]scored, len(facilities))
	for i, f := range facilities {
		items[i] = scored{
			facility: f,
			exact:    Distance(lat, lng, f.Coordinates.Lat, f.Coordinates.Lng),
		}
	}

	// Stable sort so coincident facilities keep catalog order.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].exact < items[j].exact
	})

	if len(items) > limit {
		items = items[:limit]
	}

	out := make([]RankedFacility, len(items))
	for i, it := range items {
		out[i] = RankedFacility{
			Facility:   it.facility,
			DistanceKm: RoundKm(it.exact),
		}
	}
	return out
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
