// Package schema holds the property contracts the portal expects each
// workspace database to satisfy, and the validator that checks a discovered
// database against them.
//
// Validation never returns a Go error for contract violations: missing
// properties, wrong types and incomplete option sets are expected
// configuration drift, captured as data in domain.ValidationResult so the
// caller can decide whether a partially matching database is usable.
package schema
