package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"lifegrid/internal/config"
	"lifegrid/internal/core"
	"lifegrid/internal/logging"
	_ "lifegrid/pkg/sims/life"
	_ "lifegrid/pkg/sims/life3d"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lifegrid",
		Short: "Toroidal cellular automata in two and three dimensions",
		Long: `lifegrid runs Conway's Life on a wrapped 2D grid and the 4555 rule on a
wrapped 3D grid, headless or in a window.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringArray("set", nil, "Sim parameter override as key=value (repeatable)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug or trace")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on this address")
	rootCmd.PersistentFlags().String("sim", "", "Simulation to run ("+joinNames()+")")

	rootCmd.AddCommand(
		newRunCmd(),
		newViewCmd(),
		newSweepCmd(),
		newInfoCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lifegrid version %s\n", version)
		},
	}
}

// loadConfig resolves the config file, environment and flags in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if sim, _ := cmd.Flags().GetString("sim"); sim != "" {
		cfg.Sim = sim
	}
	sets, _ := cmd.Flags().GetStringArray("set")
	for _, kv := range sets {
		if err := cfg.Set(kv); err != nil {
			return nil, err
		}
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
		cfg.Metrics.Addr = addr
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return logging.NewLogger(cfg.Logging.Level, w)
}

// buildSim looks up the configured sim and constructs it from cfg.Params.
func buildSim(cfg *config.Config) (core.Sim, error) {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %s)", cfg.Sim, joinNames())
	}
	sim, err := factory(cfg.Params)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", cfg.Sim, err)
	}
	return sim, nil
}

// seedOf returns the seed a sim was built with.
func seedOf(sim core.Sim) int64 {
	p, ok := sim.Parameters().Lookup("seed")
	if !ok {
		return 0
	}
	seed, _ := strconv.ParseInt(p.Value, 10, 64)
	return seed
}

func joinNames() string {
	names := core.Names()
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
