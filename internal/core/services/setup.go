package services

import (
	"context"
	"fmt"

	"github.com/ludwa6/customer-support/internal/core/domain"
	"github.com/ludwa6/customer-support/internal/core/ports/driven"
	"github.com/ludwa6/customer-support/internal/core/ports/driving"
	"github.com/ludwa6/customer-support/internal/logger"
	"github.com/ludwa6/customer-support/internal/notion"
	"github.com/ludwa6/customer-support/internal/schema"
)

// Ensure SetupService implements the interface.
var _ driving.SetupService = (*SetupService)(nil)

// SetupService orchestrates the resolution pass: extract the page id,
// discover databases, auto-map, validate and persist.
type SetupService struct {
	discovery *DiscoveryService
	workspace driven.Workspace
	mappings  driven.MappingStore
}

// NewSetupService creates a new setup service.
func NewSetupService(workspace driven.Workspace, mappings driven.MappingStore) *SetupService {
	return &SetupService{
		discovery: NewDiscoveryService(workspace),
		workspace: workspace,
		mappings:  mappings,
	}
}

// Run performs a full resolution pass against the page URL and persists
// the resulting mapping, overwriting any previous one. A malformed page
// URL is fatal; zero discovered databases is not.
func (s *SetupService) Run(ctx context.Context, pageURL string) (*domain.SetupReport, error) {
	pageID, err := notion.ExtractPageID(pageURL)
	if err != nil {
		return nil, fmt.Errorf("extract page id: %w", err)
	}

	// Fail fast on a bad token before the discovery pass starts.
	bot, err := s.workspace.ValidateCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("check workspace access: %w", err)
	}
	logger.Debug("authenticated as %q", bot)

	logger.Section("Discovery")
	databases, err := s.discovery.Discover(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("discover databases: %w", err)
	}

	logger.Section("Auto-mapping")
	mapping := Resolve(databases)
	if mapping.IsEmpty() {
		logger.Info("no databases detected under page %s", pageID)
	}

	report := &domain.SetupReport{
		PageID:         pageID,
		DatabasesFound: len(databases),
		Mapping:        mapping,
		Validations:    make(map[domain.EntityType]domain.ValidationResult),
	}

	logger.Section("Validation")
	byID := make(map[string]domain.DiscoveredDatabase, len(databases))
	for _, db := range databases {
		byID[db.ID] = db
	}
	for _, entityType := range domain.AllEntityTypes() {
		id := mapping.IDFor(entityType)
		if id == "" {
			continue
		}
		result := schema.Validate(byID[id], entityType)
		report.Validations[entityType] = result
		logger.Debug("%s: valid=%t errors=%d warnings=%d",
			entityType, result.IsValid, len(result.Errors), len(result.Warnings))
	}

	// The mapping is rewritten wholesale even when empty, so a re-run
	// against a reorganised page never leaves stale assignments behind.
	if err := s.mappings.Save(mapping); err != nil {
		return nil, fmt.Errorf("save mapping: %w", err)
	}

	return report, nil
}

// Inspect re-validates the persisted mapping without changing it. Each
// mapped database's schema is fetched fresh, so the report reflects the
// workspace as it is now.
func (s *SetupService) Inspect(ctx context.Context) (*domain.SetupReport, error) {
	mapping, err := s.mappings.Load()
	if err != nil {
		return nil, fmt.Errorf("load mapping: %w", err)
	}

	report := &domain.SetupReport{
		Mapping:     mapping,
		Validations: make(map[domain.EntityType]domain.ValidationResult),
	}

	for _, entityType := range domain.AllEntityTypes() {
		id := mapping.IDFor(entityType)
		if id == "" {
			continue
		}

		db, err := s.workspace.RetrieveDatabase(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("retrieve %s database %s: %w", entityType, id, err)
		}
		report.DatabasesFound++
		report.Validations[entityType] = schema.Validate(toDiscovered(db), entityType)
	}

	return report, nil
}
