package cmd

import (
	"fmt"
	"strings"

	"github.com/lumina-labs/lumina/internal/assessment"
	"github.com/spf13/cobra"
)

var takeCmd = &cobra.Command{
	Use:   "take <assessment>",
	Short: "Start a specific assessment directly",
	Long: "Start an assessment without going through the dashboard.\n\n" +
		"Available assessments: mbti, holland, scl90, iq, eq, spiritual",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := assessment.ParseType(strings.ToUpper(args[0]))
		if err != nil {
			return fmt.Errorf("%w\n\nAvailable assessments: %s", err, availableTypes())
		}
		return runApp(cmd, t)
	},
}

func availableTypes() string {
	var names []string
	for _, t := range assessment.AllTypes() {
		names = append(names, strings.ToLower(string(t)))
	}
	return strings.Join(names, ", ")
}
