// Package file provides file-backed configuration persistence: a TOML
// store for application settings and a JSON document for the database
// mapping, both living in the supportctl config directory
// (~/.supportctl by default).
//
// The mapping document is the portal's single piece of owned state; all
// content lives in the remote workspace.
package file
