package slots

import (
	"github.com/umurava/maternalcare-booking/internal/domain"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

// emergencyOnlySlots are extra start times offered for emergency
// appointments at every facility, outside the regular grid.
var emergencyOnlySlots = []types.TimeString{
	"08:00", "08:30", "17:00", "17:30", "18:00",
}

// typeTemplates is the immutable slot configuration per appointment type.
var typeTemplates = map[domain.AppointmentType]domain.TypeTemplate{
	domain.TypePrenatal: {
		Type:            domain.TypePrenatal,
		DurationMinutes: 60,
		Slots: []types.TimeString{
			"09:00", "10:00", "11:00", "14:00", "15:00", "16:00",
		},
		MaxPerDay:          6,
		RequiresSpecialist: true,
		Priority:           domain.PriorityNormal,
		Description:        "Prenatal care appointments for expectant mothers",
	},
	domain.TypePostpartum: {
		Type:            domain.TypePostpartum,
		DurationMinutes: 45,
		Slots: []types.TimeString{
			"09:15", "10:00", "10:45", "14:15", "15:00", "15:45",
		},
		MaxPerDay:          6,
		RequiresSpecialist: true,
		Priority:           domain.PriorityNormal,
		Description:        "Postpartum care and recovery appointments",
	},
	domain.TypeVaccination: {
		Type:            domain.TypeVaccination,
		DurationMinutes: 15, // quick appointments
		Slots: []types.TimeString{
			"09:00", "09:15", "09:30", "09:45", "10:00", "10:15", "10:30", "10:45",
			"11:00", "11:15", "11:30", "11:45", "14:00", "14:15", "14:30", "14:45",
			"15:00", "15:15", "15:30", "15:45", "16:00", "16:15", "16:30",
		},
		MaxPerDay:          20,
		RequiresSpecialist: false,
		Priority:           domain.PriorityNormal,
		Description:        "Child and adult vaccination appointments",
	},
	domain.TypeMentalHealth: {
		Type:            domain.TypeMentalHealth,
		DurationMinutes: 50,
		Slots: []types.TimeString{
			"09:10", "10:00", "10:50", "14:10", "15:00", "15:50",
		},
		MaxPerDay:          6,
		RequiresSpecialist: true,
		Priority:           domain.PriorityNormal,
		Description:        "Mental health and counseling sessions",
	},
	domain.TypeEmergency: {
		Type:            domain.TypeEmergency,
		DurationMinutes: 30,
		Slots: []types.TimeString{
			"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
			"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30", "18:00",
		},
		MaxPerDay:          15,
		RequiresSpecialist: false,
		Priority:           domain.PriorityHigh,
		Description:        "Emergency medical consultations",
	},
	domain.TypeTherapy: {
		Type:            domain.TypeTherapy,
		DurationMinutes: 45,
		Slots: []types.TimeString{
			"09:15", "10:00", "10:45", "11:30", "14:15", "15:00", "15:45",
		},
		MaxPerDay:          7,
		RequiresSpecialist: true,
		Priority:           domain.PriorityNormal,
		Description:        "Physical therapy and rehabilitation sessions",
	},
}

// facilityOverrides extend the slot offer at the large hospitals.
var facilityOverrides = map[int64]domain.FacilityOverride{
	1: { // King Faisal Hospital
		FacilityID:      1,
		WorkingHours:    domain.WorkingHours{Start: "08:00", End: "18:00"},
		AdditionalSlots: []types.TimeString{"08:00", "08:30", "17:30", "18:00"},
		WeekendSlots:    true,
		MaxCapacity:     100,
	},
	3: { // Kigali University Teaching Hospital (CHUK)
		FacilityID:      3,
		WorkingHours:    domain.WorkingHours{Start: "08:00", End: "20:00"},
		AdditionalSlots: []types.TimeString{"08:00", "08:30", "18:00", "18:30", "19:00", "19:30", "20:00"},
		WeekendSlots:    true,
		MaxCapacity:     150,
	},
	6: { // Kigali Central Hospital (CHK)
		FacilityID:      6,
		WorkingHours:    domain.WorkingHours{Start: "08:00", End: "17:00"},
		AdditionalSlots: []types.TimeString{"08:00", "08:30", "16:30", "17:00"},
		WeekendSlots:    true,
		MaxCapacity:     80,
	},
}
