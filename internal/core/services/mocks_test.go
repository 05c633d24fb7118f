package services

import (
	"context"
	"errors"

	"github.com/ludwa6/customer-support/internal/notion"
)

// mockWorkspace is a scriptable driven.Workspace. Unset hooks fail the
// call so tests notice unexpected traffic.
type mockWorkspace struct {
	listChildren     func(blockID, cursor string) (*notion.BlockChildren, error)
	retrieveDatabase func(databaseID string) (*notion.Database, error)
	queryDatabase    func(databaseID string, filter *notion.Filter) ([]notion.Page, error)
	createPage       func(databaseID string, properties map[string]notion.PropertyValue) (*notion.Page, error)
	updatePage       func(pageID string, properties map[string]notion.PropertyValue) (*notion.Page, error)
	validate         func() (string, error)
}

var errUnexpectedCall = errors.New("unexpected workspace call")

func (m *mockWorkspace) ListChildren(_ context.Context, blockID, cursor string) (*notion.BlockChildren, error) {
	if m.listChildren == nil {
		return nil, errUnexpectedCall
	}
	return m.listChildren(blockID, cursor)
}

func (m *mockWorkspace) RetrieveDatabase(_ context.Context, databaseID string) (*notion.Database, error) {
	if m.retrieveDatabase == nil {
		return nil, errUnexpectedCall
	}
	return m.retrieveDatabase(databaseID)
}

func (m *mockWorkspace) QueryDatabase(_ context.Context, databaseID string, filter *notion.Filter) ([]notion.Page, error) {
	if m.queryDatabase == nil {
		return nil, errUnexpectedCall
	}
	return m.queryDatabase(databaseID, filter)
}

func (m *mockWorkspace) CreatePage(_ context.Context, databaseID string, properties map[string]notion.PropertyValue) (*notion.Page, error) {
	if m.createPage == nil {
		return nil, errUnexpectedCall
	}
	return m.createPage(databaseID, properties)
}

func (m *mockWorkspace) UpdatePage(_ context.Context, pageID string, properties map[string]notion.PropertyValue) (*notion.Page, error) {
	if m.updatePage == nil {
		return nil, errUnexpectedCall
	}
	return m.updatePage(pageID, properties)
}

func (m *mockWorkspace) ValidateCredentials(_ context.Context) (string, error) {
	if m.validate == nil {
		// Most tests are not about auth; a valid token is the default.
		return "Support Portal", nil
	}
	return m.validate()
}

// schemaOf builds a wire database with the given property name/type pairs.
func schemaOf(id, title string, props map[string]string) *notion.Database {
	db := &notion.Database{
		ID:         id,
		Title:      notion.NewRichText(title),
		Properties: make(map[string]notion.PropertySchema, len(props)),
	}
	for name, typ := range props {
		db.Properties[name] = notion.PropertySchema{Name: name, Type: typ}
	}
	return db
}
