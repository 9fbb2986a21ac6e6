package life3d

import (
	"fmt"
	"strconv"

	"lifegrid/pkg/torus"
)

// Config holds parameters for a 3D sim built from the registry.
type Config struct {
	Width     int
	Height    int
	Depth     int
	Seed      int64
	Workers   int
	Threshold float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 20, Height: 20, Depth: 20, Seed: 42, Workers: 1, Threshold: torus.DefaultThreshold}
}

// FromMap populates a Config from a flag-style string map.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	dims := []struct {
		keys []string
		dst  *int
	}{
		{[]string{"w", "x"}, &c.Width},
		{[]string{"h", "y"}, &c.Height},
		{[]string{"d", "z"}, &c.Depth},
	}
	for _, dim := range dims {
		for _, key := range dim.keys {
			v, ok := cfg[key]
			if !ok {
				continue
			}
			parsed, err := strconv.Atoi(v)
			if err != nil || parsed <= 0 {
				return c, fmt.Errorf("life3d: %s=%q: %w", key, v, torus.ErrInvalidSize)
			}
			*dim.dst = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("life3d: seed=%q: %w", v, err)
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
			return c, fmt.Errorf("life3d: %w", err)
		}
		if mode != torus.Random {
			return c, fmt.Errorf("life3d: %w: %v", torus.ErrUnsupportedMode, mode)
		}
	}
	return c, nil
}

// Engine returns the engine configuration derived from c.
func (c Config) Engine() torus.Config {
	return torus.Config{Threshold: c.Threshold, Workers: c.Workers, Seed: c.Seed}
}
