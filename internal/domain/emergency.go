package domain

import "time"

// EmergencyStatus tracks an emergency dispatch record.
type EmergencyStatus string

const (
	EmergencyPending   EmergencyStatus = "pending"
	EmergencyResponded EmergencyStatus = "responded"
	EmergencyResolved  EmergencyStatus = "resolved"
)

// Emergency is a dispatch record created when a patient raises an
// alert: who raised it, where they were, and which facilities were
// notified. Persisted so every process instance sees the same state.
type Emergency struct {
	ID       string // "EMG-" prefixed identifier
	OwnerRef string

	PatientName   string
	PatientPhone  string
	PatientEmail  *string
	PatientAge    *string
	PatientGender *string

	Lat *float64
	Lng *float64

	AlertedFacilityIDs  []int64
	RespondedFacilityID *int64
	Status              EmergencyStatus

	AlertedAt time.Time
	UpdatedAt time.Time
}
