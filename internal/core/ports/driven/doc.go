// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Workspace: The remote document workspace the portal stores content in
//   - MappingStore: Persistence for the entity-type-to-database mapping
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain and the notion wire types only
//   - Cannot Import: Any adapter package
//
// The Workspace port deliberately speaks the workspace's wire shapes: the
// portal owns no database, so the remote property model is the record
// format, not an implementation detail to hide.
package driven
