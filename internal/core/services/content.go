package services

import (
	"context"
	"fmt"

	"github.com/ludwa6/customer-support/internal/core/domain"
	"github.com/ludwa6/customer-support/internal/core/ports/driven"
	"github.com/ludwa6/customer-support/internal/core/ports/driving"
	"github.com/ludwa6/customer-support/internal/marshal"
	"github.com/ludwa6/customer-support/internal/notion"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// DefaultTicketStatus is assigned to tickets created without a status.
const DefaultTicketStatus = "Open"

// ContentService reads and writes portal content through the mapped
// workspace databases. The mapping is loaded from the store on every call;
// the store itself caches, so this stays cheap while honouring an explicit
// re-resolution pass.
type ContentService struct {
	workspace driven.Workspace
	mappings  driven.MappingStore
}

// NewContentService creates a new content service.
func NewContentService(workspace driven.Workspace, mappings driven.MappingStore) *ContentService {
	return &ContentService{workspace: workspace, mappings: mappings}
}

// databaseFor resolves the mapped database id for an entity type.
func (s *ContentService) databaseFor(entityType domain.EntityType) (string, error) {
	mapping, err := s.mappings.Load()
	if err != nil {
		return "", fmt.Errorf("load mapping: %w", err)
	}
	id := mapping.IDFor(entityType)
	if id == "" {
		return "", fmt.Errorf("%s: %w", entityType, domain.ErrNotConfigured)
	}
	return id, nil
}

// ListCategories returns all categories.
func (s *ContentService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	databaseID, err := s.databaseFor(domain.EntityCategories)
	if err != nil {
		return nil, err
	}

	pages, err := s.workspace.QueryDatabase(ctx, databaseID, nil)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}

	categories := make([]domain.Category, len(pages))
	for i, page := range pages {
		categories[i] = marshal.CategoryFromPage(page)
	}
	return categories, nil
}

// ListArticles returns articles, optionally scoped to a category name.
func (s *ContentService) ListArticles(ctx context.Context, category string) ([]domain.Article, error) {
	databaseID, err := s.databaseFor(domain.EntityArticles)
	if err != nil {
		return nil, err
	}

	var filter *notion.Filter
	if category != "" {
		filter = notion.SelectEquals("Category", category)
	}

	pages, err := s.workspace.QueryDatabase(ctx, databaseID, filter)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}

	articles := make([]domain.Article, len(pages))
	for i, page := range pages {
		articles[i] = marshal.ArticleFromPage(page)
	}
	return articles, nil
}

// ListFAQs returns FAQs; popularOnly keeps only highlighted ones.
func (s *ContentService) ListFAQs(ctx context.Context, popularOnly bool) ([]domain.FAQ, error) {
	databaseID, err := s.databaseFor(domain.EntityFAQs)
	if err != nil {
		return nil, err
	}

	var filter *notion.Filter
	if popularOnly {
		filter = notion.CheckboxEquals("Popular", true)
	}

	pages, err := s.workspace.QueryDatabase(ctx, databaseID, filter)
	if err != nil {
		return nil, fmt.Errorf("query faqs: %w", err)
	}

	faqs := make([]domain.FAQ, len(pages))
	for i, page := range pages {
		faqs[i] = marshal.FAQFromPage(page)
	}
	return faqs, nil
}

// ListTickets returns all support tickets.
func (s *ContentService) ListTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	databaseID, err := s.databaseFor(domain.EntitySupportTickets)
	if err != nil {
		return nil, err
	}

	pages, err := s.workspace.QueryDatabase(ctx, databaseID, nil)
	if err != nil {
		return nil, fmt.Errorf("query tickets: %w", err)
	}

	tickets := make([]domain.SupportTicket, len(pages))
	for i, page := range pages {
		tickets[i] = marshal.TicketFromPage(page)
	}
	return tickets, nil
}

// CreateArticle writes a new article and returns it with the
// workspace-assigned id and timestamps.
func (s *ContentService) CreateArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	if article.Title == "" {
		return nil, fmt.Errorf("article title is required: %w", domain.ErrInvalidInput)
	}

	databaseID, err := s.databaseFor(domain.EntityArticles)
	if err != nil {
		return nil, err
	}

	page, err := s.workspace.CreatePage(ctx, databaseID, marshal.ArticleProperties(article))
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	created := marshal.ArticleFromPage(*page)
	return &created, nil
}

// CreateTicket writes a new support ticket. A ticket without a status is
// created as "Open".
func (s *ContentService) CreateTicket(ctx context.Context, ticket domain.SupportTicket) (*domain.SupportTicket, error) {
	if ticket.Title == "" {
		return nil, fmt.Errorf("ticket title is required: %w", domain.ErrInvalidInput)
	}
	if ticket.Email == "" {
		return nil, fmt.Errorf("ticket email is required: %w", domain.ErrInvalidInput)
	}
	if ticket.Status == "" {
		ticket.Status = DefaultTicketStatus
	}

	databaseID, err := s.databaseFor(domain.EntitySupportTickets)
	if err != nil {
		return nil, err
	}

	page, err := s.workspace.CreatePage(ctx, databaseID, marshal.TicketProperties(ticket))
	if err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	created := marshal.TicketFromPage(*page)
	return &created, nil
}

// UpdateTicketStatus moves an existing ticket to a new workflow state. The
// property bag carries only the status, so every other property on the
// ticket page is left untouched by the workspace.
func (s *ContentService) UpdateTicketStatus(ctx context.Context, ticketID, status string) (*domain.SupportTicket, error) {
	if ticketID == "" {
		return nil, fmt.Errorf("ticket id is required: %w", domain.ErrInvalidInput)
	}
	if status == "" {
		return nil, fmt.Errorf("ticket status is required: %w", domain.ErrInvalidInput)
	}

	props := marshal.TicketProperties(domain.SupportTicket{Status: status})
	page, err := s.workspace.UpdatePage(ctx, ticketID, props)
	if err != nil {
		return nil, fmt.Errorf("update ticket status: %w", err)
	}

	updated := marshal.TicketFromPage(*page)
	return &updated, nil
}
