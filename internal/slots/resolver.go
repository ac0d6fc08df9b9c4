package slots

import (
	"sort"

	"github.com/umurava/maternalcare-booking/internal/domain"
	"github.com/umurava/maternalcare-booking/pkg/types"
)

// Resolver computes the bookable time slots for (facility, appointment
// type) pairs from the immutable template and override configuration.
// All methods are pure functions of their inputs.
type Resolver struct {
	templates map[domain.AppointmentType]domain.TypeTemplate
	overrides map[int64]domain.FacilityOverride
	emergency []types.TimeString
}

// NewResolver builds a Resolver over the compiled-in configuration.
func NewResolver() *Resolver {
	return &Resolver{
		templates: typeTemplates,
		overrides: facilityOverrides,
		emergency: emergencyOnlySlots,
	}
}

// ResolveTemplate returns the template for the given appointment type.
func (r *Resolver) ResolveTemplate(appointmentType domain.AppointmentType) (domain.TypeTemplate, error) {
	tpl, ok := r.templates[appointmentType]
	if !ok {
		return domain.TypeTemplate{}, domain.ErrUnknownType
	}
	return tpl, nil
}

// EffectiveSlots returns the full deduplicated slot set for a facility
// and appointment type, sorted ascending: the type template, plus the
// facility's additional slots if an override exists, plus the global
// emergency-only slots for emergency appointments.
func (r *Resolver) EffectiveSlots(facilityID int64, appointmentType domain.AppointmentType) ([]types.TimeString, error) {
	tpl, err := r.ResolveTemplate(appointmentType)
	if err != nil {
		return nil, err
	}

	set := make(map[types.TimeString]struct{}, len(tpl.Slots))
	for _, s := range tpl.Slots {
		set[s] = struct{}{}
	}
	if ov, ok := r.overrides[facilityID]; ok {
		for _, s := range ov.AdditionalSlots {
			set[s] = struct{}{}
		}
	}
	if appointmentType == domain.TypeEmergency {
		for _, s := range r.emergency {
			set[s] = struct{}{}
		}
	}

	return sortedSlots(set), nil
}

// Available returns the effective slots minus the already-booked times,
// preserving sort order. Idempotent: it never mutates its inputs.
func (r *Resolver) Available(facilityID int64, appointmentType domain.AppointmentType, bookedTimes []types.TimeString) ([]types.TimeString, error) {
	effective, err := r.EffectiveSlots(facilityID, appointmentType)
	if err != nil {
		return nil, err
	}

	booked := make(map[types.TimeString]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[t] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(effective))
	for _, s := range effective {
		if _, taken := booked[s]; !taken {
			available = append(available, s)
		}
	}
	return available, nil
}

// Validation reports whether a requested time is currently bookable,
// along with the availability list for caller guidance.
type Validation struct {
	Valid          bool
	AvailableSlots []types.TimeString
	Message        string
}

// Validate checks a single requested time against the available set.
func (r *Resolver) Validate(slot types.TimeString, facilityID int64, appointmentType domain.AppointmentType, bookedTimes []types.TimeString) (Validation, error) {
	available, err := r.Available(facilityID, appointmentType, bookedTimes)
	if err != nil {
		return Validation{}, err
	}

	for _, s := range available {
		if s == slot {
			return Validation{Valid: true, AvailableSlots: available, Message: "Slot is available"}, nil
		}
	}
	return Validation{
		Valid:          false,
		AvailableSlots: available,
		Message:        "Slot is not available for this appointment type",
	}, nil
}

// AllSlotsForFacility returns the type-agnostic slot grid for a
// facility: the override's working-hours walked at the default stride
// plus its additional slots, or the default working-hours grid when no
// override exists. Result is deduplicated and sorted.
func (r *Resolver) AllSlotsForFacility(facilityID int64) ([]types.TimeString, error) {
	hours := domain.WorkingHours{
		Start: domain.DefaultWorkingHoursStart,
		End:   domain.DefaultWorkingHoursEnd,
	}

	ov, hasOverride := r.overrides[facilityID]
	if hasOverride {
		hours = ov.WorkingHours
	}

	grid, err := GenerateTimeSlots(hours.Start, hours.End, domain.DefaultSlotStrideMinutes)
	if err != nil {
		return nil, err
	}

	set := make(map[types.TimeString]struct{}, len(grid))
	for _, s := range grid {
		set[s] = struct{}{}
	}
	if hasOverride {
		for _, s := range ov.AdditionalSlots {
			set[s] = struct{}{}
		}
	}

	return sortedSlots(set), nil
}

// sortedSlots flattens a slot set into ascending order. Lexicographic
// sort is chronological for zero-padded HH:MM strings.
func sortedSlots(set map[types.TimeString]struct{}) []types.TimeString {
	out := make([]types.TimeString, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
