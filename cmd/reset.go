package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/lumina-labs/lumina/internal/assessment"
	"github.com/lumina-labs/lumina/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset [assessment]",
	Short: "Clear saved quiz progress",
	Long: "Clear the saved in-progress state for one assessment, or for all of\n" +
		"them when no assessment is named. Pass --history to also delete the\n" +
		"completed-assessment history.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		clearHistory, _ := cmd.Flags().GetBool("history")

		types := assessment.AllTypes()
		if len(args) == 1 {
			t, err := assessment.ParseType(strings.ToUpper(args[0]))
			if err != nil {
				return fmt.Errorf("%w\n\nAvailable assessments: %s", err, availableTypes())
			}
			types = []assessment.Type{t}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		for _, t := range types {
			if err := s.Progress().Clear(ctx, t); err != nil {
				return fmt.Errorf("clear %s progress: %w", t, err)
			}
		}
		fmt.Printf("Cleared progress for %d assessment(s).\n", len(types))

		if clearHistory {
			if err := s.History().Clear(ctx); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
			fmt.Println("Cleared assessment history.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("history", false, "Also delete completed-assessment history")
}
