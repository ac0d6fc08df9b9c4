package slots

import "errors"

var (
	// ErrInvalidRange is returned by grid generation for end <= start or
	// a non-positive stride.
	ErrInvalidRange = errors.New("slots: invalid time grid range")
)
