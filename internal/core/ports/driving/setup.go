package driving

import (
	"context"

	"github.com/ludwa6/customer-support/internal/core/domain"
)

// SetupService runs the one-off resolution pass that maps workspace
// databases to logical entity types.
type SetupService interface {
	// Run discovers databases under the given page URL, auto-maps them to
	// entity types, validates each mapped database against its contract
	// and persists the resulting mapping.
	//
	// Zero detected databases is a reportable outcome, not an error; the
	// returned report says so and the empty mapping is still persisted.
	Run(ctx context.Context, pageURL string) (*domain.SetupReport, error)

	// Inspect re-validates the currently persisted mapping without
	// changing it.
	Inspect(ctx context.Context) (*domain.SetupReport, error)
}
