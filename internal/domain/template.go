package domain

import (
	"errors"
	"fmt"

	"github.com/umurava/maternalcare-booking/pkg/types"
)

// AppointmentType enumerates the supported appointment reasons.
type AppointmentType string

const (
	TypePrenatal     AppointmentType = "prenatal"
	TypePostpartum   AppointmentType = "postpartum"
	TypeVaccination  AppointmentType = "vaccination"
	TypeMentalHealth AppointmentType = "mental_health"
	TypeEmergency    AppointmentType = "emergency"
	TypeTherapy      AppointmentType = "therapy"
)

// ErrUnknownType is returned for appointment types outside the enum.
var ErrUnknownType = errors.New("domain: unknown appointment type")

// AppointmentTypes lists all recognized types in a stable order.
var AppointmentTypes = []AppointmentType{
	TypePrenatal,
	TypePostpartum,
	TypeVaccination,
	TypeMentalHealth,
	TypeEmergency,
	TypeTherapy,
}

// ParseAppointmentType validates a raw string against the enum.
func ParseAppointmentType(s string) (AppointmentType, error) {
	for _, t := range AppointmentTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Priority tags carried by type templates.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// TypeTemplate is the immutable slot configuration for one appointment
// type: the canonical bookable start times plus capacity metadata.
type TypeTemplate struct {
	Type               AppointmentType
	Slots              []types.TimeString
	DurationMinutes    int
	MaxPerDay          int
	RequiresSpecialist bool
	Priority           Priority
	Description        string
}

// WorkingHours is a daily opening range walked at a fixed stride to
// produce a generic slot grid.
type WorkingHours struct {
	Start types.TimeString
	End   types.TimeString
}

// FacilityOverride extends the default slot offer for one facility:
// wider working hours and extra canonical start times layered on top of
// every type template.
type FacilityOverride struct {
	FacilityID      int64
	WorkingHours    WorkingHours
	AdditionalSlots []types.TimeString
	WeekendSlots    bool
	MaxCapacity     int
}
