package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var articleCategoryFlag string

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "List the portal's articles",
	RunE:  runArticles,
}

func init() {
	articlesCmd.Flags().StringVar(&articleCategoryFlag, "category", "",
		"only articles in this category")
	rootCmd.AddCommand(articlesCmd)
}

func runArticles(cmd *cobra.Command, _ []string) error {
	if contentService == nil {
		return errors.New("no API token configured (use SUPPORT_NOTION_TOKEN)")
	}

	articles, err := contentService.ListArticles(context.Background(), articleCategoryFlag)
	if err != nil {
		return fmt.Errorf("list articles: %w", err)
	}

	if len(articles) == 0 {
		cmd.Println("No articles found.")
		return nil
	}

	for _, a := range articles {
		marker := " "
		if a.IsPopular {
			marker = "*"
		}
		category := a.CategoryName
		if category == "" {
			category = "-"
		}
		cmd.Printf("%s %-40s %s\n", marker, a.Title, category)
	}
	return nil
}
