package driving

import (
	"context"

	"github.com/ludwa6/customer-support/internal/core/domain"
)

// ContentService reads and writes portal content through the mapped
// workspace databases. This is the contract the portal's HTTP layer
// consumes on every request.
//
// All operations return domain.ErrNotConfigured when no database is mapped
// for the entity type involved. Remote failures propagate unchanged;
// callers that need to stay responsive fall back to empty result sets
// themselves.
type ContentService interface {
	// ListCategories returns all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// ListArticles returns articles, optionally scoped to a category name.
	ListArticles(ctx context.Context, category string) ([]domain.Article, error)

	// ListFAQs returns FAQs; popularOnly keeps only highlighted ones.
	ListFAQs(ctx context.Context, popularOnly bool) ([]domain.FAQ, error)

	// ListTickets returns all support tickets.
	ListTickets(ctx context.Context) ([]domain.SupportTicket, error)

	// CreateArticle writes a new article and returns it with the
	// workspace-assigned id and timestamps.
	CreateArticle(ctx context.Context, article domain.Article) (*domain.Article, error)

	// CreateTicket writes a new support ticket. A ticket without a status
	// is created as "Open".
	CreateTicket(ctx context.Context, ticket domain.SupportTicket) (*domain.SupportTicket, error)

	// UpdateTicketStatus moves an existing ticket to a new workflow state.
	// Only the status property is written; everything else on the ticket
	// is left untouched.
	UpdateTicketStatus(ctx context.Context, ticketID, status string) (*domain.SupportTicket, error)
}
