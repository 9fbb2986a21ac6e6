//go:build !ebiten

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the sim in a window (requires -tags ebiten)",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.ErrOrStderr(), "The viewer requires the ebiten build tag.")
			fmt.Fprintln(cmd.ErrOrStderr(), "Re-run with `go run -tags ebiten ./cmd/lifegrid view` or build with `-tags ebiten`.")
			return errors.New("viewer not built")
		},
	}
}
