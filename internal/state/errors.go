package state

import "errors"

var (
	// ErrInvalidArgument is returned for a negative or NaN pen radius.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidRange is returned when a scale range is empty, inverted or not finite.
	ErrInvalidRange = errors.New("invalid range")
)
