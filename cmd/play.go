package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cyberquest/cyberquest/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the interactive quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	rt, err := setup(cmd, true)
	if err != nil {
		return err
	}
	defer rt.Close()

	return app.Run(rt.service, app.Options{
		LeaderboardLimit: rt.cfg.LeaderboardLimit,
	})
}
