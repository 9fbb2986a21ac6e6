package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"lifegrid/internal/sweep"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run a sim across many seeds and report convergence",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seeds") {
				cfg.Sweep.Seeds, _ = cmd.Flags().GetInt("seeds")
			}
			if cmd.Flags().Changed("first-seed") {
				cfg.Sweep.FirstSeed, _ = cmd.Flags().GetInt64("first-seed")
			}
			if cmd.Flags().Changed("workers") {
				cfg.Sweep.Workers, _ = cmd.Flags().GetInt("workers")
			}
			if cmd.Flags().Changed("max-generations") {
				cfg.Sweep.MaxGenerations, _ = cmd.Flags().GetInt("max-generations")
			}

			logger := newLogger(cfg, cmd.ErrOrStderr())
			logger.Info("sweep started",
				"sim", cfg.Sim,
				"seeds", cfg.Sweep.Seeds,
				"first_seed", cfg.Sweep.FirstSeed,
				"workers", cfg.Sweep.Workers,
				"max_generations", cfg.Sweep.MaxGenerations)

			results, err := sweep.Run(cmd.Context(), sweep.Options{
				Sim:            cfg.Sim,
				Params:         cfg.Params,
				Seeds:          cfg.Sweep.Seeds,
				FirstSeed:      cfg.Sweep.FirstSeed,
				Workers:        cfg.Sweep.Workers,
				MaxGenerations: cfg.Sweep.MaxGenerations,
			})
			if err != nil {
				return fmt.Errorf("sweep %s: %w", cfg.Sim, err)
			}

			out := cmd.OutOrStdout()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(out).Encode(results)
			}

			frozen := 0
			fmt.Fprintf(out, "%-8s %-12s %-10s %-8s %s\n", "SEED", "GENERATIONS", "FROZEN_AT", "ALIVE", "PEAK")
			for _, r := range results {
				at := "-"
				if r.Frozen() {
					at = fmt.Sprint(r.FrozenAt)
					frozen++
				}
				fmt.Fprintf(out, "%-8d %-12d %-10s %-8d %d\n", r.Seed, r.Generations, at, r.AliveCount, r.PeakAlive)
			}
			fmt.Fprintf(out, "\n%d of %d seeds froze within %d generations\n", frozen, len(results), cfg.Sweep.MaxGenerations)
			return nil
		},
	}
	cmd.Flags().Int("seeds", 0, "Number of consecutive seeds")
	cmd.Flags().Int64("first-seed", 0, "First seed of the sweep")
	cmd.Flags().Int("workers", 0, "Sims to run concurrently")
	cmd.Flags().Int("max-generations", 0, "Generation cap per seed")
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}
