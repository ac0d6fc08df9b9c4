package dispatch_emergency

import (
	"time"

	"github.com/umurava/maternalcare-booking/internal/api/middleware"
	dispatchEmergency "github.com/umurava/maternalcare-booking/internal/usecase/dispatch_emergency"
)

// PatientData carries the patient details for the alert.
type PatientData struct {
	Name   string  `json:"name"`
	Phone  string  `json:"phone"`
	Email  *string `json:"email,omitempty"`
	Age    *string `json:"age,omitempty"`
	Gender *string `json:"gender,omitempty"`
}

// Location is the optional GPS fix of the alert.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DispatchEmergencyRequest HTTP request model
type DispatchEmergencyRequest struct {
	PatientData PatientData `json:"patientData"`
	Location    *Location   `json:"location,omitempty"`
}

// AlertedFacilityResponse is one paged facility.
type AlertedFacilityResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	EmergencyPhone string   `json:"emergencyPhone"`
	DistanceKm     *float64 `json:"distanceKm,omitempty"`
}

// DispatchEmergencyResponse HTTP response model
type DispatchEmergencyResponse struct {
	EmergencyID        string                    `json:"emergencyId"`
	Status             string                    `json:"status"`
	AlertedFacilityIDs []int64                   `json:"alertedFacilityIds"`
	Facilities         []AlertedFacilityResponse `json:"facilities"`
	AlertedAt          string                    `json:"alertedAt"`
}

// ToUseCaseRequest converts the HTTP request.
func (r *DispatchEmergencyRequest) ToUseCaseRequest(p middleware.Principal) *dispatchEmergency.Request {
	req := &dispatchEmergency.Request{
		OwnerRef:      p.Ref,
		PatientName:   r.PatientData.Name,
		PatientPhone:  r.PatientData.Phone,
		PatientEmail:  r.PatientData.Email,
		PatientAge:    r.PatientData.Age,
		PatientGender: r.PatientData.Gender,
	}
	if r.Location != nil {
		lat, lng := r.Location.Lat, r.Location.Lng
		req.Lat, req.Lng = &lat, &lng
	}
	return req
}

// FromUseCaseResponse converts the use case response.
func FromUseCaseResponse(resp *dispatchEmergency.Response) *DispatchEmergencyResponse {
	facilities := make([]AlertedFacilityResponse, len(resp.Facilities))
	for i, f := range resp.Facilities {
		facilities[i] = AlertedFacilityResponse{
			ID:             f.ID,
			Name:           f.Name,
			EmergencyPhone: f.EmergencyPhone,
			DistanceKm:     f.DistanceKm,
		}
	}
	return &DispatchEmergencyResponse{
		EmergencyID:        resp.EmergencyID,
		Status:             resp.Status,
		AlertedFacilityIDs: resp.AlertedFacilityIDs,
		Facilities:         facilities,
		AlertedAt:          resp.AlertedAt.Format(time.RFC3339),
	}
}
