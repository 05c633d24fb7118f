package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotConfigured indicates no workspace database is mapped for the
	// requested entity type. Run setup or map the database manually.
	ErrNotConfigured = errors.New("no database configured for entity type")

	// ErrUnknownEntityType indicates an entity type outside the fixed set.
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
