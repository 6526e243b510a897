package model

import "github.com/pkg/errors"

var (
	// ErrInvalidSize is returned when a grid is constructed with a non-positive size.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrOutOfBounds is returned for any coordinate outside [0, size) on either axis.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrIterationExhausted signals the normal end of a universe's lifetime.
	ErrIterationExhausted = errors.New("iteration exhausted")
	// ErrInvalidConfig is returned for unusable engine or driver settings.
	ErrInvalidConfig = errors.New("invalid configuration")
)
