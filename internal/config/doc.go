// Package config provides configuration loading, merging, and validation
// facilities for the dev server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables
//  4. Command-line flags
//
// The HOST and PORT environment variables (and the -host / -port flags) form
// the [Environment] snapshot, which the resolver applies on top of the
// [Dev] defaults. The main entry point is [GetStructuredConfig].
package config
