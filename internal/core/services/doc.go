// Package services implements the core business logic: discovering
// databases under the configured workspace page, auto-mapping them to
// logical entity types, orchestrating setup, and reading/writing portal
// content through the mapped databases.
//
// Services depend only on domain types and driven ports; all I/O goes
// through the Workspace and MappingStore interfaces.
package services
