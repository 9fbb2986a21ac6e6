package torus

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned by grid operations issued before the grid
	// has been configured and populated.
	ErrNotConfigured = errors.New("grid not configured")
	// ErrAlreadyConfigured is returned when resizing a grid without a reset.
	ErrAlreadyConfigured = errors.New("grid already configured")
	// ErrInvalidSize is returned for non-positive dimensions.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrIndexOutOfRange matches every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidState is returned when an operation is not allowed in the
	// current selection phase.
	ErrInvalidState = errors.New("invalid state")
	// ErrUnsupportedMode is returned for populate modes an engine does not offer.
	ErrUnsupportedMode = errors.New("unsupported populate mode")
)

// IndexError reports a primary coordinate outside the grid.
type IndexError struct {
	Coord Coord
	Size  Coord
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("cell (%d,%d,%d) outside grid %dx%dx%d",
		e.Coord.X, e.Coord.Y, e.Coord.Z, e.Size.X, e.Size.Y, e.Size.Z)
}

// Is lets errors.Is(err, ErrIndexOutOfRange) match.
func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }
