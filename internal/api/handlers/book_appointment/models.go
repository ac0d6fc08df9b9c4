package book_appointment

import (
	"time"

	"github.com/umurava/maternalcare-booking/internal/api/middleware"
	"github.com/umurava/maternalcare-booking/internal/domain"
	bookAppointment "github.com/umurava/maternalcare-booking/internal/usecase/book_appointment"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	FacilityID      int64   `json:"facilityId"`
	Date            string  `json:"date"`      // "2026-03-10"
	StartTime       string  `json:"startTime"` // "09:00"
	AppointmentType string  `json:"appointmentType"`
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	FacilityID      int64   `json:"facilityId"`
	FacilityName    string  `json:"facilityName"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	AppointmentType string  `json:"appointmentType"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ConflictResponse is returned when the slot is not bookable; it
// carries the remaining availability as suggestions.
type ConflictResponse struct {
	Error          string   `json:"error"`
	AvailableSlots []string `json:"availableSlots"`
}

// ToUseCaseRequest converts the HTTP request, parsing date and time.
func (r *BookAppointmentRequest) ToUseCaseRequest(p middleware.Principal) (*bookAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		OwnerRef:        p.Ref,
		FacilityID:      r.FacilityID,
		Date:            date,
		StartTime:       startTime,
		AppointmentType: r.AppointmentType,
		Notes:           r.Notes,
		Contact:         p.Contact,
	}, nil
}

// FromUseCaseResponse converts the use case response.
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		FacilityID:      resp.FacilityID,
		FacilityName:    resp.FacilityName,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		AppointmentType: resp.AppointmentType,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

func slotsToStrings(slots []types.TimeString) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}
