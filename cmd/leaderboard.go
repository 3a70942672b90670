package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cyberquest/cyberquest/internal/screens/leaderboard"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the top scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		if !cmd.Flags().Changed("limit") {
			limit = rt.cfg.LeaderboardLimit
		}
		user, _ := cmd.Flags().GetString("user")

		entries, err := rt.service.Leaderboard(cmd.Context(), limit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No scores yet. Play a round with `cyberquest play`.")
			return nil
		}
		fmt.Fprintln(out, leaderboard.Table(entries, user))
		return nil
	},
}

func init() {
	leaderboardCmd.Flags().Int("limit", 10, "Number of entries to show")
	leaderboardCmd.Flags().String("user", "", "Highlight this player's rows")
}
