package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the portal's categories",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	if contentService == nil {
		return errors.New("no API token configured (use SUPPORT_NOTION_TOKEN)")
	}

	categories, err := contentService.ListCategories(context.Background())
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}

	if len(categories) == 0 {
		cmd.Println("No categories found.")
		return nil
	}

	for _, c := range categories {
		if c.Description != "" {
			cmd.Printf("%-30s %s\n", c.Name, c.Description)
		} else {
			cmd.Println(c.Name)
		}
	}
	return nil
}
