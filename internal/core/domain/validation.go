package domain

// ValidationResult is the outcome of checking a discovered database against
// an entity type's property contract. It is recomputed on every call and
// never persisted.
//
// Structural mismatches are captured here as data rather than returned as
// Go errors: they represent expected, recoverable configuration drift, and
// the caller decides whether a partially matching database is good enough.
type ValidationResult struct {
	// IsValid is true when no errors were recorded. Warnings never affect it.
	IsValid bool

	// Errors lists contract violations, in the order they were found.
	Errors []string

	// Warnings lists non-fatal findings (missing select options, extra
	// properties), in the order they were found.
	Warnings []string

	// Present lists required properties (or logical fields, under lenient
	// matching) that were satisfied.
	Present []string

	// Missing lists required properties that could not be satisfied.
	Missing []string

	// IncorrectType lists properties that exist under the expected name but
	// carry the wrong workspace type.
	IncorrectType []string
}

// SetupReport summarises a full setup pass: discovery, auto-mapping,
// validation and persistence of the resulting mapping.
type SetupReport struct {
	// PageID is the canonical identifier extracted from the page URL.
	PageID string

	// DatabasesFound is how many databases discovery returned.
	DatabasesFound int

	// Mapping is the persisted assignment produced by auto-mapping.
	Mapping DatabaseMapping

	// Validations holds the validation result for each mapped entity type.
	Validations map[EntityType]ValidationResult
}

// NoneDetected reports whether auto-mapping found no usable database.
// This is a reportable outcome, not an error: manual mapping is the
// recovery path.
func (r SetupReport) NoneDetected() bool {
	return r.Mapping.IsEmpty()
}
