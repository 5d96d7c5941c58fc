package vector

import (
	"errors"
)

var (
	// ErrOutOfRange is returned for an index at or past the size,
	// or for a negative count.
	ErrOutOfRange = errors.New("out of range")
	// ErrLength is returned when a requested length is negative,
	// as for a range whose last iterator precedes its first, or
	// larger than MaxSize.
	ErrLength = errors.New("invalid length")
)
