package driven

import "github.com/ludwa6/customer-support/internal/core/domain"

// MappingStore persists the entity-type-to-database mapping.
//
// The mapping is read-mostly: loaded once at process start and treated as
// immutable until an explicit re-resolution pass overwrites it. Save always
// rewrites the whole mapping; there are no partial updates.
type MappingStore interface {
	// Load reads the persisted mapping. A missing document is not an
	// error: it loads as the zero mapping.
	Load() (domain.DatabaseMapping, error)

	// Save persists the mapping wholesale, replacing any previous one.
	Save(mapping domain.DatabaseMapping) error
}
