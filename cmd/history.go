package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lumina-labs/lumina/internal/assessment"
	"github.com/lumina-labs/lumina/internal/scoring"
	"github.com/lumina-labs/lumina/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List completed assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.History().List(context.Background())
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No completed assessments yet.")
			return nil
		}

		fmt.Printf("%-19s  %-10s  %-7s  %s\n", "Taken", "Type", "Edition", "Outcome")
		fmt.Println(strings.Repeat("─", 72))

		for i, r := range records {
			if limit > 0 && i >= limit {
				break
			}
			taken := time.UnixMilli(r.TakenAt).Local().Format("2006-01-02 15:04:05")
			edition := "lite"
			if r.Version == assessment.VersionPro {
				edition = "pro"
			}
			fmt.Printf("%-19s  %-10s  %-7s  %s\n", taken, r.Type, edition, resultOutcome(r.Result))
		}
		return nil
	},
}

// resultOutcome renders the one-line headline for a stored result.
func resultOutcome(res scoring.Result) string {
	switch {
	case res.MBTI != nil:
		return res.MBTI.Type
	case res.Holland != nil:
		return res.Holland.Code
	case res.SCL90 != nil:
		return fmt.Sprintf("%s (avg %.2f)", res.SCL90.Severity, res.SCL90.AverageScore)
	case res.IQ != nil:
		return fmt.Sprintf("%s (%.0f/%.0f)", res.IQ.Level, res.IQ.Score, res.IQ.Total)
	case res.EQ != nil:
		return fmt.Sprintf("%s (%.0f/%.0f)", res.EQ.Level, res.EQ.Score, res.EQ.Total)
	case res.Spiritual != nil:
		return res.Spiritual.Dominant
	}
	return "(unknown)"
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of records to show")
}
