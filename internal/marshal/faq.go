package marshal

import (
	"github.com/ludwa6/customer-support/internal/core/domain"
	"github.com/ludwa6/customer-support/internal/notion"
)

// FAQ property names. The write path always uses the canonical names; the
// read path tolerates the alternatives that lenient schema validation
// accepts, since FAQ databases are the ones most often hand-created.
const (
	faqQuestion = "Question"
	faqAnswer   = "Answer"
	faqCategory = "Category"
	faqPopular  = "Popular"
)

// answerSynonyms mirror the lenient contract for the Answer field.
var answerSynonyms = []string{"answer", "content", "description"}

// FAQFromPage converts a workspace page into an FAQ record.
func FAQFromPage(page notion.Page) domain.FAQ {
	question := titleOf(page, faqQuestion, "")
	if question == "" {
		// Hand-created FAQ databases keep the workspace's default title
		// column name. A database has exactly one title property, so the
		// type alone identifies it.
		if s, ok := titleByType(page); ok && s != "" {
			question = s
		}
	}
	if question == "" {
		question = "Untitled Question"
	}

	answer := richTextOf(page, faqAnswer)
	if answer == "" {
		if s, ok := richTextBySynonym(page, answerSynonyms); ok {
			answer = s
		}
	}

	_, categoryName := selectOf(page, faqCategory)
	return domain.FAQ{
		ID:           page.ID,
		Question:     question,
		Answer:       answer,
		CategoryName: categoryName,
		IsPopular:    checkboxOf(page, faqPopular),
		CreatedAt:    page.CreatedTime,
		UpdatedAt:    page.LastEditedTime,
	}
}

// FAQProperties builds the property bag for writing an FAQ.
func FAQProperties(f domain.FAQ) map[string]notion.PropertyValue {
	props := make(map[string]notion.PropertyValue)
	if f.Question != "" {
		props[faqQuestion] = notion.PropertyValue{Title: notion.NewRichText(f.Question)}
	}
	if f.Answer != "" {
		props[faqAnswer] = notion.PropertyValue{RichText: notion.NewRichText(f.Answer)}
	}
	if f.CategoryName != "" {
		props[faqCategory] = notion.PropertyValue{
			Select: &notion.SelectOption{Name: f.CategoryName},
		}
	}
	if f.IsPopular {
		props[faqPopular] = notion.PropertyValue{Checkbox: boolPtr(true)}
	}
	return props
}
