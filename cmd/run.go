package cmd

import (
	"fmt"

	"github.com/lumina-labs/lumina/internal/app"
	"github.com/lumina-labs/lumina/internal/assessment"
	"github.com/spf13/cobra"
)

// runApp resolves flags and launches the TUI, optionally starting a
// specific assessment instead of the dashboard.
func runApp(cmd *cobra.Command, start assessment.Type) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	version := assessment.VersionLite
	if pro, _ := cmd.Flags().GetBool("pro"); pro {
		version = assessment.VersionPro
	}

	return app.Run(app.Options{
		Version: version,
		DBPath:  dbPath,
		Start:   start,
	})
}
