package torus

import (
	"fmt"
	"strings"
)

// Mode selects how Populate seeds a grid.
type Mode uint8

const (
	// Random makes each cell alive independently with probability 1-threshold.
	Random Mode = iota
	// Empty kills every cell, leaving the pattern to the caller.
	Empty
)

func (m Mode) String() string {
	switch m {
	case Random:
		return "random"
	case Empty:
		return "empty"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode maps "random" or "empty" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "":
		return Random, nil
	case "empty", "manual":
		return Empty, nil
	}
	return Random, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
}

// DefaultThreshold leaves roughly one cell in ten alive after random seeding.
const DefaultThreshold = 0.9

// Config is handed to an engine at construction.
type Config struct {
	// Threshold is the draw a cell must exceed to start alive. Zero means
	// DefaultThreshold.
	Threshold float64
	// Workers splits each generation across this many goroutines. Values
	// below one run sequentially.
	Workers int
	// Seed drives the default PCG source when Source is nil.
	Seed int64
	// Source overrides the random source used by Populate.
	Source Source
}

// DefaultConfig returns a sequential configuration with the default density.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold, Workers: 1}
}

// Normalize fills zero values with defaults and returns the result.
func (c Config) Normalize() Config {
	if c.Threshold <= 0 || c.Threshold >= 1 {
		c.Threshold = DefaultThreshold
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.Source == nil {
		c.Source = NewRNG(c.Seed)
	}
	return c
}
