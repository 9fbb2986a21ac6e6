//go:build ebiten

package main

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"lifegrid/internal/app"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the sim in a window",
		Long: `View paints the grid each frame. Click cells to toggle them while
selecting, Enter starts the run, Space pauses, N steps once, R reseeds and
Q or Esc quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cfg, cmd.ErrOrStderr())
			sim, err := buildSim(cfg)
			if err != nil {
				return err
			}
			runner := app.NewRunner(sim, app.Options{Logger: logger})
			game := app.New(runner, cfg.View.Scale, cfg.Interval, seedOf(sim))
			size := sim.Size()

			ebiten.SetWindowTitle(fmt.Sprintf("lifegrid: %s", sim.Name()))
			ebiten.SetTPS(cfg.View.TPS)
			ebiten.SetWindowSize(size.W*cfg.View.Scale+app.PanelWidth, size.H*cfg.View.Scale)

			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
}
