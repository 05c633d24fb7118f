// Package domain defines the core business entities for the support portal.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - EntityType: One of the four logical record shapes the portal understands
//   - Category, Article, FAQ, SupportTicket: Flat entity records
//   - DiscoveredDatabase: A workspace database found under the configured page
//   - DatabaseMapping: The persisted entity-type-to-database assignment
//   - ValidationResult: The outcome of checking a database against a contract
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
