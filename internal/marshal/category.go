package marshal

import (
	"github.com/ludwa6/customer-support/internal/core/domain"
	"github.com/ludwa6/customer-support/internal/notion"
)

// Category property names.
const (
	categoryName        = "Name"
	categoryDescription = "Description"
)

// CategoryFromPage converts a workspace page into a Category record.
// Missing properties fall back to defaults; the page id and timestamps
// always come from page metadata.
func CategoryFromPage(page notion.Page) domain.Category {
	return domain.Category{
		ID:          page.ID,
		Name:        titleOf(page, categoryName, "Untitled Category"),
		Description: richTextOf(page, categoryDescription),
		CreatedAt:   page.CreatedTime,
		UpdatedAt:   page.LastEditedTime,
	}
}

// CategoryProperties builds the property bag for writing a Category.
// Empty fields are omitted so partial updates leave them untouched.
func CategoryProperties(c domain.Category) map[string]notion.PropertyValue {
	props := make(map[string]notion.PropertyValue)
	if c.Name != "" {
		props[categoryName] = notion.PropertyValue{Title: notion.NewRichText(c.Name)}
	}
	if c.Description != "" {
		props[categoryDescription] = notion.PropertyValue{RichText: notion.NewRichText(c.Description)}
	}
	return props
}
