package slots

import (
	"fmt"

	"github.com/umurava/maternalcare-booking/pkg/types"
)

// GenerateTimeSlots walks [start, end) in stride-minute increments and
// returns the resulting HH:MM grid. The end bound is exclusive: a slot
// starting exactly at end is not produced.
func GenerateTimeSlots(start, end types.TimeString, strideMinutes int) ([]types.TimeString, error) {
	if strideMinutes <= 0 {
		return nil, fmt.Errorf("%w: stride must be positive, got %d", ErrInvalidRange, strideMinutes)
	}

	startMin, err := start.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: bad start: %v", ErrInvalidRange, err)
	}
	endMin, err := end.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: bad end: %v", ErrInvalidRange, err)
	}
	if endMin <= startMin {
		return nil, fmt.Errorf("%w: end %s must be after start %s", ErrInvalidRange, end, start)
	}

	var grid []types.TimeString
	for m := startMin; m < endMin; m += strideMinutes {
		ts, err := types.FromMinutes(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
		}
		grid = append(grid, ts)
	}
	return grid, nil
}
