package domain

import "time"

// EntityType identifies one of the four logical record shapes the portal
// understands, independent of how any workspace database is actually named.
type EntityType string

const (
	// EntityCategories groups articles and FAQs into browsable sections.
	EntityCategories EntityType = "categories"
	// EntityArticles holds the documentation articles shown in the portal.
	EntityArticles EntityType = "articles"
	// EntityFAQs holds question/answer pairs.
	EntityFAQs EntityType = "faqs"
	// EntitySupportTickets holds tickets submitted through the portal.
	EntitySupportTickets EntityType = "supportTickets"
)

// AllEntityTypes returns the entity types in their canonical order.
// The order matters: it is the tie-break order used when a database title
// matches more than one auto-mapping vocabulary.
func AllEntityTypes() []EntityType {
	return []EntityType{EntityCategories, EntityArticles, EntityFAQs, EntitySupportTickets}
}

// String returns the canonical identifier, as used in the mapping file.
func (t EntityType) String() string {
	return string(t)
}

// DisplayName returns a human-readable name for CLI output.
func (t EntityType) DisplayName() string {
	switch t {
	case EntityCategories:
		return "Categories"
	case EntityArticles:
		return "Articles"
	case EntityFAQs:
		return "FAQs"
	case EntitySupportTickets:
		return "Support Tickets"
	default:
		return string(t)
	}
}

// IsValid reports whether t is one of the four known entity types.
func (t EntityType) IsValid() bool {
	switch t {
	case EntityCategories, EntityArticles, EntityFAQs, EntitySupportTickets:
		return true
	}
	return false
}

// Category is a browsable section of the support portal.
type Category struct {
	// ID is the workspace page identifier.
	ID string

	// Name is the category title.
	Name string

	// Description is a short explanation shown under the name.
	Description string

	// CreatedAt and UpdatedAt come from workspace page metadata.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Article is a documentation article.
type Article struct {
	// ID is the workspace page identifier.
	ID string

	// Title is the article headline.
	Title string

	// Content is the article body text.
	Content string

	// CategoryID is the workspace option identifier of the article's category.
	CategoryID string

	// CategoryName is the display name of the article's category.
	CategoryName string

	// IsPopular marks the article for the portal's highlights section.
	IsPopular bool

	// CreatedAt and UpdatedAt come from workspace page metadata.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FAQ is a single question/answer pair.
type FAQ struct {
	// ID is the workspace page identifier.
	ID string

	// Question is the question text.
	Question string

	// Answer is the answer body.
	Answer string

	// CategoryName is the display name of the FAQ's category, if any.
	CategoryName string

	// IsPopular marks the FAQ for the portal's highlights section.
	IsPopular bool

	// CreatedAt and UpdatedAt come from workspace page metadata.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SupportTicket is a support request submitted through the portal.
type SupportTicket struct {
	// ID is the workspace page identifier.
	ID string

	// Title is the ticket subject line.
	Title string

	// Description is the full problem description.
	Description string

	// Email is the requester's contact address.
	Email string

	// Status is the ticket's workflow state (e.g. "Open", "Resolved").
	// Status options are user-customisable on the workspace side.
	Status string

	// Priority is the triage level (e.g. "Low", "Medium", "High").
	Priority string

	// Due is the target resolution date, if set.
	Due time.Time

	// CreatedAt and UpdatedAt come from workspace page metadata.
	CreatedAt time.Time
	UpdatedAt time.Time
}
