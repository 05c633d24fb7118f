package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "Show the current database mapping and re-validate it",
	RunE:  runDatabases,
}

func init() {
	rootCmd.AddCommand(databasesCmd)
}

func runDatabases(cmd *cobra.Command, _ []string) error {
	if setupService == nil {
		return errors.New("no API token configured (use SUPPORT_NOTION_TOKEN)")
	}

	report, err := setupService.Inspect(context.Background())
	if err != nil {
		return fmt.Errorf("inspect mapping: %w", err)
	}

	if report.Mapping.IsEmpty() {
		cmd.Println("No databases mapped. Run 'supportctl setup' first.")
		return nil
	}

	printReport(cmd, report)
	return nil
}
