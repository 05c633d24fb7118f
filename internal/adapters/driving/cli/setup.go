package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ludwa6/customer-support/internal/config"
	"github.com/ludwa6/customer-support/internal/core/domain"
)

var (
	pageURLFlag string
	tokenFlag   string
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Discover and map the support databases on a workspace page",
	Long: `Discovers the databases under the configured workspace page,
auto-maps them to the portal's content types by title, validates each
mapped database against its expected schema and saves the mapping.

Re-running setup overwrites the previous mapping wholesale.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().StringVar(&pageURLFlag, "page-url", "",
		"workspace page URL (env SUPPORT_NOTION_PAGE_URL)")
	setupCmd.Flags().StringVar(&tokenFlag, "token", "",
		"workspace integration token (env SUPPORT_NOTION_TOKEN)")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	if setupService == nil {
		return errors.New("no API token configured (use --token or SUPPORT_NOTION_TOKEN)")
	}

	envCfg, err := config.Load()
	if err != nil {
		return err
	}
	pageURL := resolvePageURL(envCfg)
	if pageURL == "" {
		return errors.New("no page URL configured (use --page-url or SUPPORT_NOTION_PAGE_URL)")
	}

	report, err := setupService.Run(context.Background(), pageURL)
	if err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}

	// Remember the inputs for the next run.
	if configStore != nil {
		if err := configStore.Set(keyNotionPageURL, pageURL); err != nil {
			return fmt.Errorf("save page url: %w", err)
		}
		if tokenFlag != "" {
			if err := configStore.Set(keyNotionToken, tokenFlag); err != nil {
				return fmt.Errorf("save token: %w", err)
			}
		}
	}

	printReport(cmd, report)
	return nil
}

// printReport renders a setup or inspection report.
func printReport(cmd *cobra.Command, report *domain.SetupReport) {
	if report.PageID != "" {
		cmd.Printf("Page: %s\n", report.PageID)
	}
	cmd.Printf("Databases found: %d\n", report.DatabasesFound)
	cmd.Println()

	if report.NoneDetected() {
		cmd.Println("No databases detected. Create the support databases on the page,")
		cmd.Println("or map them manually in the mapping file, then re-run setup.")
		return
	}

	for _, entityType := range domain.AllEntityTypes() {
		id := report.Mapping.IDFor(entityType)
		if id == "" {
			cmd.Printf("%-16s (not mapped)\n", entityType.DisplayName())
			continue
		}

		result, ok := report.Validations[entityType]
		switch {
		case !ok:
			cmd.Printf("%-16s %s\n", entityType.DisplayName(), id)
		case result.IsValid:
			cmd.Printf("%-16s %s  OK\n", entityType.DisplayName(), id)
		default:
			cmd.Printf("%-16s %s  INVALID\n", entityType.DisplayName(), id)
		}

		for _, msg := range result.Errors {
			cmd.Printf("    error: %s\n", msg)
		}
		for _, msg := range result.Warnings {
			cmd.Printf("    warning: %s\n", msg)
		}
	}
}
