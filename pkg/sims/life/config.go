package life

import (
	"fmt"
	"strconv"

	"lifegrid/pkg/torus"
)

// Config holds parameters for a 2D Life sim built from the registry.
type Config struct {
	Width     int
	Height    int
	Seed      int64
	Workers   int
	Threshold float64
	Populate  torus.Mode
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:     50,
		Height:    50,
		Seed:      42,
		Workers:   1,
		Threshold: torus.DefaultThreshold,
		Populate:  torus.Random,
	}
}

// FromMap populates a Config from a flag-style string map. Both w/h and x/y
// name the dimensions.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	for _, key := range []string{"w", "x"} {
		if v, ok := cfg[key]; ok {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed <= 0 {
				return c, fmt.Errorf("life: %s=%q: %w", key, v, torus.ErrInvalidSize)
			}
			c.Width = parsed
		}
	}
	for _, key := range []string{"h", "y"} {
		if v, ok := cfg[key]; ok {
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed <= 0 {
				return c, fmt.Errorf("life: %s=%q: %w", key, v, torus.ErrInvalidSize)
			}
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("life: seed=%q: %w", v, err)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 1 {
			c.Threshold = parsed
		}
	}
	if v, ok := cfg["populate"]; ok {
		mode, err := torus.ParseMode(v)
		if err != nil {
			return c, fmt.Errorf("life: %w", err)
		}
		c.Populate = mode
	}
	return c, nil
}

// Engine returns the engine configuration derived from c.
func (c Config) Engine() torus.Config {
	return torus.Config{Threshold: c.Threshold, Workers: c.Workers, Seed: c.Seed}
}
