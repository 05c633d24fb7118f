package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludwa6/customer-support/internal/adapters/driven/storage/memory"
	"github.com/ludwa6/customer-support/internal/core/domain"
	"github.com/ludwa6/customer-support/internal/notion"
)

func mappedStore(t *testing.T) *memory.MappingStore {
	t.Helper()
	store := memory.NewMappingStore()
	require.NoError(t, store.Save(domain.DatabaseMapping{
		Categories:     "db-cat",
		Articles:       "db-articles",
		FAQs:           "db-faq",
		SupportTickets: "db-tickets",
	}))
	return store
}

func categoryPage(id, name, description string) notion.Page {
	return notion.Page{
		ID: id,
		Properties: map[string]notion.PropertyValue{
			"Name":        {Type: "title", Title: notion.NewRichText(name)},
			"Description": {Type: "rich_text", RichText: notion.NewRichText(description)},
		},
	}
}

func TestContentService_ListCategories(t *testing.T) {
	workspace := &mockWorkspace{
		queryDatabase: func(databaseID string, filter *notion.Filter) ([]notion.Page, error) {
			assert.Equal(t, "db-cat", databaseID)
			assert.Nil(t, filter)
			return []notion.Page{
				categoryPage("page-1", "Billing", "Invoices and payments"),
				categoryPage("page-2", "Account", "Profile and access"),
			}, nil
		},
	}

	svc := NewContentService(workspace, mappedStore(t))
	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, "Billing", categories[0].Name)
	assert.Equal(t, "Invoices and payments", categories[0].Description)
}

func TestContentService_NotConfigured(t *testing.T) {
	svc := NewContentService(&mockWorkspace{}, memory.NewMappingStore())

	_, err := svc.ListCategories(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotConfigured)

	_, err = svc.ListTickets(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestContentService_ListArticles_CategoryFilter(t *testing.T) {
	workspace := &mockWorkspace{
		queryDatabase: func(databaseID string, filter *notion.Filter) ([]notion.Page, error) {
			assert.Equal(t, "db-articles", databaseID)
			require.NotNil(t, filter)
			assert.Equal(t, "Category", filter.Property)
			require.NotNil(t, filter.Select)
			assert.Equal(t, "Billing", filter.Select.Equals)
			return nil, nil
		},
	}

	svc := NewContentService(workspace, mappedStore(t))
	articles, err := svc.ListArticles(context.Background(), "Billing")
	require.NoError(t, err)
	assert.Empty(t, articles)
}

func TestContentService_ListArticles_NoFilter(t *testing.T) {
	workspace := &mockWorkspace{
		queryDatabase: func(_ string, filter *notion.Filter) ([]notion.Page, error) {
			assert.Nil(t, filter)
			return nil, nil
		},
	}

	svc := NewContentService(workspace, mappedStore(t))
	_, err := svc.ListArticles(context.Background(), "")
	require.NoError(t, err)
}

func TestContentService_ListFAQs_PopularOnly(t *testing.T) {
	workspace := &mockWorkspace{
		queryDatabase: func(databaseID string, filter *notion.Filter) ([]notion.Page, error) {
			assert.Equal(t, "db-faq", databaseID)
			require.NotNil(t, filter)
			assert.Equal(t, "Popular", filter.Property)
			require.NotNil(t, filter.Checkbox)
			assert.True(t, filter.Checkbox.Equals)
			return nil, nil
		},
	}

	svc := NewContentService(workspace, mappedStore(t))
	_, err := svc.ListFAQs(context.Background(), true)
	require.NoError(t, err)
}

func TestContentService_CreateArticle(t *testing.T) {
	workspace := &mockWorkspace{
		createPage: func(databaseID string, properties map[string]notion.PropertyValue) (*notion.Page, error) {
			assert.Equal(t, "db-articles", databaseID)
			assert.Contains(t, properties, "Title")
			assert.Contains(t, properties, "Content")
			return &notion.Page{
				ID:          "page-new",
				CreatedTime: time.Now(),
				Properties:  properties,
			}, nil
		},
	}

	svc := NewContentService(workspace, mappedStore(t))
	created, err := svc.CreateArticle(context.Background(), domain.Article{
		Title:   "How to pay an invoice",
		Content: "Open the billing page.",
	})
	require.NoError(t, err)
	assert.Equal(t, "page-new", created.ID)
	assert.Equal(t, "How to pay an invoice", created.Title)
}

func TestContentService_CreateArticle_RequiresTitle(t *testing.T) {
	svc := NewContentService(&mockWorkspace{}, mappedStore(t))

	_, err := svc.CreateArticle(context.Background(), domain.Article{Content: "body"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContentService_CreateTicket_DefaultsStatusToOpen(t *testing.T) {
	workspace := &mockWorkspace{
		createPage: func(databaseID string, properties map[string]notion.PropertyValue) (*notion.Page, error) {
			assert.Equal(t, "db-tickets", databaseID)
			require.Contains(t, properties, "Status")
			assert.Equal(t, "Open", properties["Status"].Select.Name)
			return &notion.Page{ID: "ticket-1", Properties: properties}, nil
		},
	}

	svc := NewContentService(workspace, mappedStore(t))
	created, err := svc.CreateTicket(context.Background(), domain.SupportTicket{
		Title: "Cannot log in",
		Email: "user@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Open", created.Status)
}

func TestContentService_CreateTicket_KeepsExplicitStatus(t *testing.T) {
	workspace := &mockWorkspace{
		createPage: func(_ string, properties map[string]notion.PropertyValue) (*notion.Page, error) {
			assert.Equal(t, "In Progress", properties["Status"].Select.Name)
			return &notion.Page{ID: "ticket-1", Properties: properties}, nil
		},
	}

	svc := NewContentService(workspace, mappedStore(t))
	created, err := svc.CreateTicket(context.Background(), domain.SupportTicket{
		Title:  "Cannot log in",
		Email:  "user@example.com",
		Status: "In Progress",
	})
	require.NoError(t, err)
	assert.Equal(t, "In Progress", created.Status)
}

func TestContentService_UpdateTicketStatus_WritesOnlyStatus(t *testing.T) {
	workspace := &mockWorkspace{
		updatePage: func(pageID string, properties map[string]notion.PropertyValue) (*notion.Page, error) {
			assert.Equal(t, "ticket-1", pageID)
			// A partial bag: title, email and the rest stay untouched.
			require.Len(t, properties, 1)
			require.Contains(t, properties, "Status")
			assert.Equal(t, "Resolved", properties["Status"].Select.Name)
			return &notion.Page{
				ID: pageID,
				Properties: map[string]notion.PropertyValue{
					"Title":  {Type: "title", Title: notion.NewRichText("Cannot log in")},
					"Status": {Type: "select", Select: &notion.SelectOption{Name: "Resolved"}},
				},
			}, nil
		},
	}

	svc := NewContentService(workspace, mappedStore(t))
	updated, err := svc.UpdateTicketStatus(context.Background(), "ticket-1", "Resolved")
	require.NoError(t, err)
	assert.Equal(t, "Resolved", updated.Status)
	assert.Equal(t, "Cannot log in", updated.Title)
}

func TestContentService_UpdateTicketStatus_Validation(t *testing.T) {
	svc := NewContentService(&mockWorkspace{}, mappedStore(t))

	_, err := svc.UpdateTicketStatus(context.Background(), "", "Resolved")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.UpdateTicketStatus(context.Background(), "ticket-1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestContentService_CreateTicket_Validation(t *testing.T) {
	svc := NewContentService(&mockWorkspace{}, mappedStore(t))

	_, err := svc.CreateTicket(context.Background(), domain.SupportTicket{Email: "user@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.CreateTicket(context.Background(), domain.SupportTicket{Title: "No email"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
