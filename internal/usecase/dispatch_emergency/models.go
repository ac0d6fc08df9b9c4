package dispatch_emergency

import "time"

// Request carries the alert payload. Location is optional: alerts
// raised without GPS data fall back to catalog-order facilities.
type Request struct {
	OwnerRef      string
	PatientName   string
	PatientPhone  string
	PatientEmail  *string
	PatientAge    *string
	PatientGender *string
	Lat           *float64
	Lng           *float64
}

// AlertedFacility is one facility notified about the emergency.
type AlertedFacility struct {
	ID             int64
	Name           string
	EmergencyPhone string
	// DistanceKm is nil when the alert carried no location.
	DistanceKm *float64
}

// Response confirms the dispatch.
type Response struct {
	EmergencyID        string
	Status             string
	AlertedFacilityIDs []int64
	Facilities         []AlertedFacility
	AlertedAt          time.Time
}
