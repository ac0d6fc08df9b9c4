package emergencies

import (
	"time"

	"github.com/umurava/maternalcare-booking/internal/domain"
)

// EmergencyResponse is the wire shape of a dispatch record.
type EmergencyResponse struct {
	ID                  string   `json:"id"`
	PatientName         string   `json:"patientName"`
	PatientPhone        string   `json:"patientPhone"`
	PatientEmail        *string  `json:"patientEmail,omitempty"`
	PatientAge          *string  `json:"patientAge,omitempty"`
	PatientGender       *string  `json:"patientGender,omitempty"`
	Lat                 *float64 `json:"lat,omitempty"`
	Lng                 *float64 `json:"lng,omitempty"`
	AlertedFacilityIDs  []int64  `json:"alertedFacilityIds"`
	RespondedFacilityID *int64   `json:"respondedFacilityId,omitempty"`
	Status              string   `json:"status"`
	AlertedAt           string   `json:"alertedAt"`
	UpdatedAt           string   `json:"updatedAt"`
}

func fromDomainEmergency(e *domain.Emergency) *EmergencyResponse {
	return &EmergencyResponse{
		ID:                  e.ID,
		PatientName:         e.PatientName,
		PatientPhone:        e.PatientPhone,
		PatientEmail:        e.PatientEmail,
		PatientAge:          e.PatientAge,
		PatientGender:       e.PatientGender,
		Lat:                 e.Lat,
		Lng:                 e.Lng,
		AlertedFacilityIDs:  e.AlertedFacilityIDs,
		RespondedFacilityID: e.RespondedFacilityID,
		Status:              string(e.Status),
		AlertedAt:           e.AlertedAt.Format(time.RFC3339),
		UpdatedAt:           e.UpdatedAt.Format(time.RFC3339),
	}
}
