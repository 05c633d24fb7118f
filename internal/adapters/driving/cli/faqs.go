package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var faqPopularFlag bool

var faqsCmd = &cobra.Command{
	Use:   "faqs",
	Short: "List frequently asked questions",
	RunE:  runFAQs,
}

func init() {
	faqsCmd.Flags().BoolVar(&faqPopularFlag, "popular", false,
		"only FAQs marked as popular")
	rootCmd.AddCommand(faqsCmd)
}

func runFAQs(cmd *cobra.Command, _ []string) error {
	if contentService == nil {
		return errors.New("no API token configured (use SUPPORT_NOTION_TOKEN)")
	}

	faqs, err := contentService.ListFAQs(context.Background(), faqPopularFlag)
	if err != nil {
		return fmt.Errorf("list faqs: %w", err)
	}

	if len(faqs) == 0 {
		cmd.Println("No FAQs found.")
		return nil
	}

	for i, f := range faqs {
		if i > 0 {
			cmd.Println()
		}
		cmd.Printf("Q: %s\n", f.Question)
		if f.Answer != "" {
			cmd.Printf("A: %s\n", f.Answer)
		}
	}
	return nil
}
