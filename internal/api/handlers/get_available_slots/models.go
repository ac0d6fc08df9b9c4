package get_available_slots

import (
	"github.com/umurava/maternalcare-booking/internal/domain"
	getAvailableSlots "github.com/umurava/maternalcare-booking/internal/usecase/get_available_slots"
)

// SlotInfoResponse describes the appointment type the slots belong to.
type SlotInfoResponse struct {
	DurationMinutes    int    `json:"durationMinutes"`
	MaxPerDay          int    `json:"maxPerDay"`
	RequiresSpecialist bool   `json:"requiresSpecialist"`
	Priority           string `json:"priority"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	FacilityID      int64             `json:"facilityId"`
	FacilityName    string            `json:"facilityName"`
	Date            string            `json:"date"`
	AppointmentType *string           `json:"appointmentType,omitempty"`
	Slots           []string          `json:"slots"`
	SlotInfo        *SlotInfoResponse `json:"slotInfo,omitempty"`
	TotalSlots      int               `json:"totalSlots"`
	AvailableCount  int               `json:"availableCount"`
	BookedCount     int               `json:"bookedCount"`
}

// FromUseCaseResponse converts the use case response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = s.String()
	}

	out := &AvailableSlotsResponse{
		FacilityID:      resp.FacilityID,
		FacilityName:    resp.FacilityName,
		Date:            resp.Date.Format(domain.DateFormat),
		AppointmentType: resp.AppointmentType,
		Slots:           slots,
		TotalSlots:      resp.TotalSlots,
		AvailableCount:  resp.AvailableCount,
		BookedCount:     resp.BookedCount,
	}
	if resp.SlotInfo != nil {
		out.SlotInfo = &SlotInfoResponse{
			DurationMinutes:    resp.SlotInfo.DurationMinutes,
			MaxPerDay:          resp.SlotInfo.MaxPerDay,
			RequiresSpecialist: resp.SlotInfo.RequiresSpecialist,
			Priority:           resp.SlotInfo.Priority,
		}
	}
	return out
}
