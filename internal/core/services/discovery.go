package services

import (
	"context"
	"fmt"

	"github.com/ludwa6/customer-support/internal/core/domain"
	"github.com/ludwa6/customer-support/internal/core/ports/driven"
	"github.com/ludwa6/customer-support/internal/logger"
	"github.com/ludwa6/customer-support/internal/notion"
)

// DiscoveryService enumerates the databases that live under a workspace
// page.
type DiscoveryService struct {
	workspace driven.Workspace
}

// NewDiscoveryService creates a new discovery service.
func NewDiscoveryService(workspace driven.Workspace) *DiscoveryService {
	return &DiscoveryService{workspace: workspace}
}

// Discover lists every child database under the page, in the order the
// workspace returns them. Pagination is followed to exhaustion; each
// cursor depends on the previous response, so the loop is sequential.
//
// A database whose schema cannot be fetched is logged and skipped rather
// than failing the whole pass: one broken share should not block setup.
func (s *DiscoveryService) Discover(ctx context.Context, pageID string) ([]domain.DiscoveredDatabase, error) {
	var databases []domain.DiscoveredDatabase

	cursor := ""
	for {
		select {
		case <-ctx.Done():
			return databases, ctx.Err()
		default:
		}

		children, err := s.workspace.ListChildren(ctx, pageID, cursor)
		if err != nil {
			return nil, fmt.Errorf("list children of %s: %w", pageID, err)
		}

		for _, block := range children.Results {
			if block.Type != notion.BlockTypeChildDatabase {
				continue
			}

			db, err := s.workspace.RetrieveDatabase(ctx, block.ID)
			if err != nil {
				logger.Warn("skipping database %s: schema fetch failed: %v", block.ID, err)
				continue
			}
			databases = append(databases, toDiscovered(db))
		}

		if !children.HasMore || children.NextCursor == "" {
			break
		}
		cursor = children.NextCursor
	}

	logger.Debug("discovered %d database(s) under page %s", len(databases), pageID)
	return databases, nil
}

// toDiscovered flattens a database schema into the discovery shape the
// validator and resolver consume.
func toDiscovered(db *notion.Database) domain.DiscoveredDatabase {
	discovered := domain.DiscoveredDatabase{
		ID:            db.ID,
		Title:         notion.PlainText(db.Title),
		Properties:    make(map[string]domain.PropertyType, len(db.Properties)),
		SelectOptions: make(map[string][]string),
	}

	for name, prop := range db.Properties {
		discovered.Properties[name] = domain.PropertyType(prop.Type)
		if prop.Select != nil {
			options := make([]string, len(prop.Select.Options))
			for i, opt := range prop.Select.Options {
				options[i] = opt.Name
			}
			discovered.SelectOptions[name] = options
		}
	}

	return discovered
}
