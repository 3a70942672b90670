package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cyberquest/cyberquest/internal/questions"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Summarize the question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		bank, err := loadBank(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if v := bank.Version(); v != "" {
			fmt.Fprintf(out, "Question bank %s\n\n", v)
		}
		counts := bank.CountByLevel()
		for _, lvl := range questions.Levels {
			info := lvl.Info()
			fmt.Fprintf(out, "%s %-13s %2d questions  %s\n", info.Icon, info.Name, counts[lvl], info.Description)
		}
		fmt.Fprintln(out, "\nCategories:")
		for _, c := range bank.Categories() {
			fmt.Fprintf(out, "  %s %s\n", questions.CategoryIcon(c), c)
		}
		return nil
	},
}
