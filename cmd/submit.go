package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cyberquest/cyberquest/internal/apperr"
	"github.com/cyberquest/cyberquest/internal/scoring"
	"github.com/cyberquest/cyberquest/internal/screens/results"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Score and record one set of answers",
	Long: `Evaluate answers for a level without the interactive UI.

Each --answer is QUESTION_ID=OPTION_INDEX with a zero-based option index.
Questions without an answer count as wrong.`,
	Example: "  cyberquest submit --user alice --level beginner --answer 1=2 --answer 2=0",
	RunE:    runSubmit,
}

func init() {
	submitCmd.Flags().String("user", "", "Player name (required)")
	submitCmd.Flags().String("level", "", "Level: beginner, intermediate or advanced (required)")
	submitCmd.Flags().StringArray("answer", nil, "Answer as QUESTION_ID=OPTION_INDEX (repeatable)")
	submitCmd.Flags().Int("width", 80, "Output width")
	_ = submitCmd.MarkFlagRequired("user")
	_ = submitCmd.MarkFlagRequired("level")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	user, _ := cmd.Flags().GetString("user")
	level, _ := cmd.Flags().GetString("level")
	answers, _ := cmd.Flags().GetStringArray("answer")
	width, _ := cmd.Flags().GetInt("width")

	raw, err := parseAnswerFlags(answers)
	if err != nil {
		return err
	}
	sub, err := scoring.ParseSubmission(raw)
	if err != nil {
		return err
	}

	rt, err := setup(cmd, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	res, err := rt.service.Play(cmd.Context(), user, level, sub)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), results.Render(res, width))
	return nil
}

// parseAnswerFlags splits ID=IDX pairs into the raw form used by
// scoring.ParseSubmission.
func parseAnswerFlags(pairs []string) (map[string]string, error) {
	raw := make(map[string]string, len(pairs))
	for _, p := range pairs {
		id, idx, ok := strings.Cut(p, "=")
		id, idx = strings.TrimSpace(id), strings.TrimSpace(idx)
		if !ok || id == "" || idx == "" {
			return nil, apperr.Validation("answer", "%q is not QUESTION_ID=OPTION_INDEX", p)
		}
		raw[id] = idx
	}
	return raw, nil
}
