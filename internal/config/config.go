// Package config loads driver configuration for lifegrid.
// Values come from defaults, then an optional YAML file, then LIFEGRID_*
// environment variables; the CLI applies its flags last.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config contains every driver setting.
type Config struct {
	// Sim names the registered simulation to run: "life" or "life3d".
	Sim string `yaml:"sim"`

	// Params is handed to the sim factory (w, h, d, seed, workers, populate, threshold).
	Params map[string]string `yaml:"params"`

	// Interval is the time between generations. Zero runs as fast as possible.
	Interval time.Duration `yaml:"interval"`

	// Generations stops the run after this many generations. Zero runs until
	// cancelled or frozen.
	Generations int `yaml:"generations"`

	// StopWhenFrozen ends a run on the first generation without changes.
	StopWhenFrozen bool `yaml:"stop_when_frozen"`

	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	Sweep   SweepConfig   `yaml:"sweep"`
	View    ViewConfig    `yaml:"view"`
}

// LoggingConfig configures the slog logger.
type LoggingConfig struct {
	// Level is "info" (default), "debug" or "trace".
	Level string `yaml:"level"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address for /metrics, e.g. ":9102". Empty disables it.
	Addr string `yaml:"addr"`
}

// SweepConfig configures multi-seed sweeps.
type SweepConfig struct {
	Seeds          int   `yaml:"seeds"`
	FirstSeed      int64 `yaml:"first_seed"`
	Workers        int   `yaml:"workers"`
	MaxGenerations int   `yaml:"max_generations"`
}

// ViewConfig configures the ebiten viewer.
type ViewConfig struct {
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Sim:            "life",
		Params:         map[string]string{},
		Interval:       250 * time.Millisecond,
		StopWhenFrozen: true,
		Logging:        LoggingConfig{Level: "info"},
		Sweep:          SweepConfig{Seeds: 16, FirstSeed: 1, Workers: 4, MaxGenerations: 500},
		View:           ViewConfig{Scale: 8, TPS: 60},
	}
}

// Load returns defaults overlaid with path (when non-empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Sim == "" {
		return fmt.Errorf("sim must not be empty")
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval must be non-negative, got %v", c.Interval)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must be non-negative, got %d", c.Generations)
	}
	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}
	if c.Sweep.Seeds < 0 || c.Sweep.Workers < 0 || c.Sweep.MaxGenerations < 0 {
		return fmt.Errorf("sweep values must be non-negative: %+v", c.Sweep)
	}
	if c.View.Scale < 0 || c.View.TPS < 0 {
		return fmt.Errorf("view values must be non-negative: %+v", c.View)
	}
	return nil
}

// Set applies a key=value override to Params.
func (c *Config) Set(kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok || key == "" {
		return fmt.Errorf("override %q is not in key=value form", kv)
	}
	if c.Params == nil {
		c.Params = map[string]string{}
	}
	c.Params[strings.TrimSpace(key)] = strings.TrimSpace(value)
	return nil
}

func applyEnvOverrides(c *Config) {
	if v := os.Getenv("LIFEGRID_SIM"); v != "" {
		c.Sim = v
	}
	if v := os.Getenv("LIFEGRID_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Interval = d
		}
	}
	if v := os.Getenv("LIFEGRID_GENERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Generations = n
		}
	}
	if v := os.Getenv("LIFEGRID_STOP_WHEN_FROZEN"); v != "" {
		c.StopWhenFrozen = v == "true" || v == "1"
	}
	if v := os.Getenv("LIFEGRID_SEED"); v != "" {
		c.Params["seed"] = v
	}
	if v := os.Getenv("LIFEGRID_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LIFEGRID_METRICS_ADDR"); v != "" {
		c.Metrics.Addr = v
	}
}
