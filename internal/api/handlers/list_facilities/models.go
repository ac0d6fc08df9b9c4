package list_facilities

import "github.com/umurava/maternalcare-booking/internal/directory"

// FacilityResponse HTTP response model
type FacilityResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	District       string   `json:"district"`
	Sector         string   `json:"sector"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
	Phone          string   `json:"phone"`
	EmergencyPhone string   `json:"emergencyPhone"`
	Services       []string `json:"services"`
	Rating         float64  `json:"rating"`
	Hours          string   `json:"hours"`
}

// FacilityListResponse wraps the catalog listing.
type FacilityListResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	Total      int                `json:"total"`
}

// FromDomainFacility converts a catalog entry.
func FromDomainFacility(f directory.Facility) FacilityResponse {
	return FacilityResponse{
		ID:             f.ID,
		Name:           f.Name,
		Location:       f.Location,
		District:       f.District,
		Sector:         f.Sector,
		Lat:            f.Coordinates.Lat,
		Lng:            f.Coordinates.Lng,
		Phone:          f.Phone,
		EmergencyPhone: f.EmergencyPhone,
		Services:       f.Services,
		Rating:         f.Rating,
		Hours:          f.Hours,
	}
}

// FromDomainFacilities converts a catalog listing.
func FromDomainFacilities(list []directory.Facility) *FacilityListResponse {
	out := make([]FacilityResponse, len(list))
	for i, f := range list {
		out[i] = FromDomainFacility(f)
	}
	return &FacilityListResponse{Facilities: out, Total: len(out)}
}
