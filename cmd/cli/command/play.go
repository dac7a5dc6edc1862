package command

import (
	"fmt"

	"movierecommender/internal/browser"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open a browser game while you wait",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		game := browser.Game{URL: cfg.GameURL, Opener: opener}
		if err := game.Play(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Opened %s\n", cfg.GameURL)
		return nil
	},
}
