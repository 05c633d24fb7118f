package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/ludwa6/customer-support/internal/core/domain"
	"github.com/ludwa6/customer-support/internal/core/ports/driving"
)

// mockSetupService scripts the driving.SetupService port.
type mockSetupService struct {
	run     func(pageURL string) (*domain.SetupReport, error)
	inspect func() (*domain.SetupReport, error)
}

var _ driving.SetupService = (*mockSetupService)(nil)

func (m *mockSetupService) Run(_ context.Context, pageURL string) (*domain.SetupReport, error) {
	return m.run(pageURL)
}

func (m *mockSetupService) Inspect(_ context.Context) (*domain.SetupReport, error) {
	return m.inspect()
}

// mockContentService scripts the driving.ContentService port.
type mockContentService struct {
	categories []domain.Category
	articles   []domain.Article
	faqs       []domain.FAQ
	tickets    []domain.SupportTicket

	createdTicket  *domain.SupportTicket
	createdArticle *domain.Article
	updatedStatus  string
	err            error
}

var _ driving.ContentService = (*mockContentService)(nil)

func (m *mockContentService) ListCategories(_ context.Context) ([]domain.Category, error) {
	return m.categories, m.err
}

func (m *mockContentService) ListArticles(_ context.Context, _ string) ([]domain.Article, error) {
	return m.articles, m.err
}

func (m *mockContentService) ListFAQs(_ context.Context, _ bool) ([]domain.FAQ, error) {
	return m.faqs, m.err
}

func (m *mockContentService) ListTickets(_ context.Context) ([]domain.SupportTicket, error) {
	return m.tickets, m.err
}

func (m *mockContentService) CreateArticle(_ context.Context, article domain.Article) (*domain.Article, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.createdArticle = &article
	return &article, nil
}

func (m *mockContentService) CreateTicket(_ context.Context, ticket domain.SupportTicket) (*domain.SupportTicket, error) {
	if m.err != nil {
		return nil, m.err
	}
	if ticket.Status == "" {
		ticket.Status = "Open"
	}
	m.createdTicket = &ticket
	return &ticket, nil
}

func (m *mockContentService) UpdateTicketStatus(_ context.Context, ticketID, status string) (*domain.SupportTicket, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.updatedStatus = status
	return &domain.SupportTicket{ID: ticketID, Title: "Cannot log in", Status: status}, nil
}

// execute runs the root command with injected services and returns its
// combined output. Package-level state is restored afterwards.
func execute(t *testing.T, setup driving.SetupService, content driving.ContentService, args ...string) (string, error) {
	t.Helper()

	oldSetup, oldContent := setupService, contentService
	setupService, contentService = setup, content
	t.Cleanup(func() {
		setupService, contentService = oldSetup, oldContent
		rootCmd.SetArgs(nil)
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}
