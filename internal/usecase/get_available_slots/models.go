package get_available_slots

import (
	"time"

	"github.com/umurava/maternalcare-booking/pkg/types"
)

// Request asks for the open slots at a facility on a date.
// AppointmentType is optional: when nil the response carries the
// type-agnostic grid for the facility instead of a per-type set.
type Request struct {
	FacilityID      int64
	Date            time.Time
	AppointmentType *string
}

// SlotInfo describes the appointment type the slots were resolved for.
type SlotInfo struct {
	DurationMinutes    int
	MaxPerDay          int
	RequiresSpecialist bool
	Priority           string
}

// Response lists the open slots plus booking pressure counters.
type Response struct {
	FacilityID      int64
	FacilityName    string
	Date            time.Time
	AppointmentType *string
	Slots           []types.TimeString
	SlotInfo        *SlotInfo
	TotalSlots      int
	AvailableCount  int
	BookedCount     int
}
