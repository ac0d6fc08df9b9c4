package reschedule_appointment

import (
	"time"

	"github.com/umurava/maternalcare-booking/internal/domain"
	"github.com/umurava/maternalcare-booking/internal/service/appointments/models"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

// RescheduleAppointmentRequest HTTP request model. All fields are
// optional; omitted ones keep the appointment's current values.
type RescheduleAppointmentRequest struct {
	Date            string  `json:"date,omitempty"`      // "2026-03-12"
	StartTime       string  `json:"startTime,omitempty"` // "10:00"
	AppointmentType *string `json:"appointmentType,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// ToServiceRequest converts the HTTP request, parsing date and time
// when present.
func (r *RescheduleAppointmentRequest) ToServiceRequest(id int64, ownerRef string) (*models.RescheduleAppointmentRequest, error) {
	var date time.Time
	if r.Date != "" {
		var err error
		date, err = time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
	}

	var startTime types.TimeString
	if r.StartTime != "" {
		var err error
		startTime, err = types.NewTimeStringFromString(r.StartTime)
		if err != nil {
			return nil, err
		}
	}

	return &models.RescheduleAppointmentRequest{
		ID:              id,
		OwnerRef:        ownerRef,
		Date:            date,
		StartTime:       startTime,
		AppointmentType: r.AppointmentType,
		Notes:           r.Notes,
	}, nil
}
