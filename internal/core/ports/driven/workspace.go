package driven

import (
	"context"

	"github.com/ludwa6/customer-support/internal/notion"
)

// Workspace is the capability the core consumes from the remote document
// workspace. Implementations do not retry: transport, auth and rate-limit
// failures propagate unchanged, and the caller decides what to do.
type Workspace interface {
	// ListChildren returns one page of a block's children. An empty cursor
	// starts from the top; the response carries the cursor for the next
	// call while HasMore is true.
	ListChildren(ctx context.Context, blockID, cursor string) (*notion.BlockChildren, error)

	// RetrieveDatabase fetches a database's title and property schema.
	RetrieveDatabase(ctx context.Context, databaseID string) (*notion.Database, error)

	// QueryDatabase returns all pages of a database matching the filter.
	// A nil filter returns every page.
	QueryDatabase(ctx context.Context, databaseID string, filter *notion.Filter) ([]notion.Page, error)

	// CreatePage creates a record in a database with the given properties.
	CreatePage(ctx context.Context, databaseID string, properties map[string]notion.PropertyValue) (*notion.Page, error)

	// UpdatePage updates the given properties of an existing page.
	// Properties absent from the map are left untouched.
	UpdatePage(ctx context.Context, pageID string, properties map[string]notion.PropertyValue) (*notion.Page, error)

	// ValidateCredentials checks the API token and returns the
	// integration's bot name on success.
	ValidateCredentials(ctx context.Context) (string, error)
}
