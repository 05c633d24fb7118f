package marshal

import (
	"github.com/ludwa6/customer-support/internal/core/domain"
	"github.com/ludwa6/customer-support/internal/notion"
)

// Article property names.
const (
	articleTitle    = "Title"
	articleContent  = "Content"
	articleCategory = "Category"
	articlePopular  = "Popular"
)

// ArticleFromPage converts a workspace page into an Article record.
func ArticleFromPage(page notion.Page) domain.Article {
	categoryID, categoryName := selectOf(page, articleCategory)
	return domain.Article{
		ID:           page.ID,
		Title:        titleOf(page, articleTitle, "Untitled Article"),
		Content:      richTextOf(page, articleContent),
		CategoryID:   categoryID,
		CategoryName: categoryName,
		IsPopular:    checkboxOf(page, articlePopular),
		CreatedAt:    page.CreatedTime,
		UpdatedAt:    page.LastEditedTime,
	}
}

// ArticleProperties builds the property bag for writing an Article.
func ArticleProperties(a domain.Article) map[string]notion.PropertyValue {
	props := make(map[string]notion.PropertyValue)
	if a.Title != "" {
		props[articleTitle] = notion.PropertyValue{Title: notion.NewRichText(a.Title)}
	}
	if a.Content != "" {
		props[articleContent] = notion.PropertyValue{RichText: notion.NewRichText(a.Content)}
	}
	if a.CategoryID != "" || a.CategoryName != "" {
		props[articleCategory] = notion.PropertyValue{
			Select: &notion.SelectOption{ID: a.CategoryID, Name: a.CategoryName},
		}
	}
	if a.IsPopular {
		props[articlePopular] = notion.PropertyValue{Checkbox: boolPtr(true)}
	}
	return props
}
