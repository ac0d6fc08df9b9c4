package models

import (
	"errors"
	"time"

	"github.com/umurava/maternalcare-booking/internal/domain"
	"github.com/umurava/maternalcare-booking/internal/notify"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

var (
	// ErrInvalidStatus is returned for an unrecognized status string.
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request models

// GetUserAppointmentsRequest asks for an owner's appointment history.
type GetUserAppointmentsRequest struct {
	OwnerRef string
	Status   *string
}

// CancelAppointmentRequest cancels a reservation. Contact receives the
// cancellation notice.
type CancelAppointmentRequest struct {
	ID       int64
	OwnerRef string
	Contact  notify.Contact
}

// RescheduleAppointmentRequest moves a reservation to a new slot.
// Date, StartTime, AppointmentType and Notes are all optional; unset
// fields keep their current values.
type RescheduleAppointmentRequest struct {
	ID              int64
	OwnerRef        string
	Date            time.Time
	StartTime       types.TimeString
	AppointmentType *string
	Notes           *string
}

// Response models

// AppointmentResponse is the wire shape of a reservation.
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	FacilityID      int64   `json:"facilityId"`
	FacilityName    string  `json:"facilityName"`
	Date            string  `json:"date"`      // "2026-03-10"
	StartTime       string  `json:"startTime"` // "09:00"
	AppointmentType string  `json:"appointmentType"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// AppointmentListResponse is a list of reservations.
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// ToDomainStatus parses a status string.
func ToDomainStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	if !domain.ValidStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// FromDomainReservation converts a domain reservation to the response shape.
func FromDomainReservation(res *domain.Reservation) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              res.ID,
		FacilityID:      res.FacilityID,
		FacilityName:    res.FacilityName,
		Date:            res.Date.Format(domain.DateFormat),
		StartTime:       res.StartTime.String(),
		AppointmentType: string(res.AppointmentType),
		Status:          string(res.Status),
		Notes:           res.Notes,
		CreatedAt:       res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       res.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList converts a list of reservations.
func FromDomainReservationList(list []*domain.Reservation) *AppointmentListResponse {
	out := make([]*AppointmentResponse, len(list))
	for i, res := range list {
		out[i] = FromDomainReservation(res)
	}
	return &AppointmentListResponse{Appointments: out, Total: len(out)}
}
