package life

import (
	"fmt"

	"lifegrid/pkg/torus"
)

// Phase is the selection state of a 2D grid.
type Phase uint8

const (
	// Idle means the grid has not been populated yet.
	Idle Phase = iota
	// Selecting accepts ToggleCell calls and rejects Advance.
	Selecting
	// Running accepts Advance calls and rejects ToggleCell.
	Running
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Selecting:
		return "selecting"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Phase returns the current selection phase.
func (e *Engine) Phase() Phase { return e.phase }

// ToggleCell flips the cell at (x, y). It is only allowed while selecting.
func (e *Engine) ToggleCell(x, y int) error {
	if err := e.ready(); err != nil {
		return err
	}
	if e.phase != Selecting {
		return fmt.Errorf("toggle (%d,%d) while %s: %w", x, y, e.phase, torus.ErrInvalidState)
	}
	i, err := e.offset(x, y)
	if err != nil {
		return err
	}
	e.cur[i] ^= 1
	return nil
}

// Start ends the selection phase. The transition is one-way until Reset;
// starting a grid that is already running does nothing.
func (e *Engine) Start() error {
	if err := e.ready(); err != nil {
		return err
	}
	e.phase = Running
	return nil
}
