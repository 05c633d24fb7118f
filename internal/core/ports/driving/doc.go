// Package driving defines the interfaces through which the outside world
// drives the core: the CLI today, an HTTP layer tomorrow.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; adapters call them.
package driving
