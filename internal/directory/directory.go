package directory

import (
	"fmt"
	"strings"

	"github.com/umurava/maternalcare-booking/internal/domain"
)

// Directory answers identity and filter queries over the static facility
// catalog. It is immutable after construction and safe for concurrent use.
type Directory struct {
	facilities []Facility
	byID       map[int64]*Facility
}

// New builds a Directory over the compiled-in catalog.
func New() *Directory {
	return NewWithFacilities(catalog)
}

// NewWithFacilities builds a Directory over an explicit facility list.
// Used by tests that need a controlled catalog.
func NewWithFacilities(facilities []Facility) *Directory {
	d := &Directory{
		facilities: facilities,
		byID:       make(map[int64]*Facility, len(facilities)),
	}
	for i := range d.facilities {
		d.byID[d.facilities[i].ID] = &d.facilities[i]
	}
	return d
}

// GetByID returns the facility with the given id.
func (d *Directory) GetByID(id int64) (*Facility, error) {
	f, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", ErrFacilityNotFound, id)
	}
	return f, nil
}

// GetAll returns every facility in catalog insertion order.
func (d *Directory) GetAll() []Facility {
	out := make([]Facility, len(d.facilities))
	copy(out, d.facilities)
	return out
}

// GetBySector returns facilities for an administrative sector lookup:
// exact sector matches first, then other facilities in the same district,
// capped at five results. Matching is case-insensitive.
func (d *Directory) GetBySector(district, sector string) []SectorMatch {
	const limit = domain.SectorLookupLimit

	var exact, nearby []Facility
	for _, f := range d.facilities {
		if !strings.EqualFold(f.District, district) {
			continue
		}
		if strings.EqualFold(f.Sector, sector) {
			exact = append(exact, f)
		} else {
			nearby = append(nearby, f)
		}
	}

	matches := make([]SectorMatch, 0, limit)
	for _, f := range exact {
		if len(matches) == limit {
			break
		}
		matches = append(matches, SectorMatch{Facility: f, IsInSector: true, Proximity: ProximityInSector})
	}
	for _, f := range nearby {
		if len(matches) == limit {
			break
		}
		matches = append(matches, SectorMatch{Facility: f, IsInSector: false, Proximity: ProximitySameDistrict})
	}

	return matches
}

// Search returns facilities whose name, location, district or sector
// contains the query, case-insensitively.
func (d *Directory) Search(query string) []Facility {
	q := strings.ToLower(query)

	var out []Facility
	for _, f := range d.facilities {
		if strings.Contains(strings.ToLower(f.Name), q) ||
			strings.Contains(strings.ToLower(f.Location), q) ||
			strings.Contains(strings.ToLower(f.District), q) ||
			strings.Contains(strings.ToLower(f.Sector), q) {
			out = append(out, f)
		}
	}
	return out
}
