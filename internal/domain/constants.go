package domain

// Default working hours used when a facility has no override.
const (
	DefaultWorkingHoursStart = "09:00"
	DefaultWorkingHoursEnd   = "16:30"
	DefaultSlotStrideMinutes = 30
)

// Business validation constants
const (
	MaxNotesLength = 500

	// DefaultNearestLimit and MaxNearestLimit bound proximity queries.
	DefaultNearestLimit = 10
	MaxNearestLimit     = 20

	// SectorLookupLimit caps sector/district directory lookups.
	SectorLookupLimit = 5

	// SuggestedSlotsLimit caps the availability hints returned with a
	// rejected booking.
	SuggestedSlotsLimit = 10
)

// DateFormat is the wire layout for calendar dates. Times of day are
// types.TimeString values and carry their own layout.
const DateFormat = "2006-01-02" // YYYY-MM-DD

// ActiveStatuses are the states that keep a (facility, date, time) key
// occupied. Used when counting booked times for availability.
var ActiveStatuses = []ReservationStatus{
	StatusScheduled,
	StatusCompleted,
	StatusNoShow,
}
