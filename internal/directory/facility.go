package directory

// Coordinates is a WGS84 point in decimal degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Facility is one health center in the static catalog.
type Facility struct {
	ID             int64
	Name           string
	District       string
	Sector         string
	Location       string
	Phone          string
	EmergencyPhone string
	Hours          string
	Rating         float64
	Services       []string
	Coordinates    Coordinates
}

// ServiceEmergency is the capability tag that marks a facility as an
// emergency dispatch target.
const ServiceEmergency = "Emergency"

// HasService reports whether the facility carries the given capability tag.
func (f *Facility) HasService(service string) bool {
	for _, s := range f.Services {
		if s == service {
			return true
		}
	}
	return false
}

// SectorMatch is a facility returned by a sector lookup, annotated with
// whether it sits in the requested sector or only in the same district.
// Proximity is a coarse label, not a measured distance; callers that
// need real distances use the geo package.
type SectorMatch struct {
	Facility
	IsInSector bool
	Proximity  string
}

const (
	ProximityInSector     = "in sector"
	ProximitySameDistrict = "same district"
)
