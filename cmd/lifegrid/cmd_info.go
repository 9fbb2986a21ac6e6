package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"lifegrid/internal/core"
)

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the registered sims and the parameters a sim would run with",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			sim, err := buildSim(cfg)
			if err != nil {
				return err
			}
			snap := sim.Parameters()

			out := cmd.OutOrStdout()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"sims":       core.Names(),
					"sim":        sim.Name(),
					"size":       sim.Size(),
					"parameters": snap.Groups,
				})
			}

			size := sim.Size()
			fmt.Fprintf(out, "Registered sims: %s\n\n", joinNames())
			fmt.Fprintf(out, "%s (%dx%dx%d, %d cells)\n", sim.Name(), size.W, size.H, size.D, size.Cells())
			for _, g := range snap.Groups {
				if g.Summary != "" {
					fmt.Fprintf(out, "\n%s: %s\n", g.Name, g.Summary)
				} else {
					fmt.Fprintf(out, "\n%s\n", g.Name)
				}
				for _, p := range g.Params {
					fmt.Fprintf(out, "  %-14s %-8s %s\n", p.Key, p.Value, p.Label)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}
