package location

import "errors"

var (
	ErrMissingCoordinates = errors.New("location coordinates are required")
	ErrInvalidCoordinates = errors.New("location coordinates out of range")
)
