package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cyberquest/cyberquest/internal/apperr"
	"github.com/cyberquest/cyberquest/internal/screens/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a player's statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		width, _ := cmd.Flags().GetInt("width")

		rt, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		report, err := rt.service.Stats(cmd.Context(), user)
		if apperr.IsNotFound(err) {
			fmt.Fprintf(cmd.OutOrStdout(), "No games recorded for %q.\n", user)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), stats.Render(report, width))
		return nil
	},
}

func init() {
	statsCmd.Flags().String("user", "", "Player name (required)")
	statsCmd.Flags().Int("width", 72, "Output width")
	_ = statsCmd.MarkFlagRequired("user")
}
