package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lifegrid/internal/app"
	"lifegrid/internal/metrics"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation headless",
		Long: `Run advances the configured sim on its interval until the generation
limit, a frozen generation (when stop_when_frozen is set) or an interrupt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("generations") {
				cfg.Generations, _ = cmd.Flags().GetInt("generations")
			}
			if cmd.Flags().Changed("interval") {
				cfg.Interval, _ = cmd.Flags().GetDuration("interval")
			}
			if cmd.Flags().Changed("stop-when-frozen") {
				cfg.StopWhenFrozen, _ = cmd.Flags().GetBool("stop-when-frozen")
			}

			logger := newLogger(cfg, cmd.ErrOrStderr())
			sim, err := buildSim(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var rec *metrics.Recorder
			if cfg.Metrics.Addr != "" {
				rec = metrics.New()
				go func() {
					if err := rec.Serve(ctx, cfg.Metrics.Addr, logger); err != nil {
						logger.Error("metrics endpoint failed", "err", err)
					}
				}()
			}

			runner := app.NewRunner(sim, app.Options{
				Interval:       cfg.Interval,
				Generations:    cfg.Generations,
				StopWhenFrozen: cfg.StopWhenFrozen,
				Logger:         logger,
				Metrics:        rec,
			})
			sum, err := runner.Run(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d generations, %d alive, stopped: %s\n",
				sim.Name(), sum.Generations, sum.AliveCount, sum.Reason)
			return nil
		},
	}
	cmd.Flags().Int("generations", 0, "Stop after this many generations (0 = no limit)")
	cmd.Flags().Duration("interval", 0, "Time between generations (0 = back to back)")
	cmd.Flags().Bool("stop-when-frozen", true, "Stop on the first generation without changes")
	return cmd
}
