package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidDevConfigs indicates invalid dev defaults (for example, a
	// port out of range or a malformed proxy target).
	ErrInvalidDevConfigs = errors.New("invalid dev configuration")
	// ErrInvalidBuildConfigs indicates invalid build settings (for example,
	// a non-positive resolve timeout).
	ErrInvalidBuildConfigs = errors.New("invalid build configuration")
	// ErrInvalidFinderConfigs indicates invalid port discovery bounds.
	ErrInvalidFinderConfigs = errors.New("invalid finder configuration")
	// ErrInvalidServerConfigs indicates invalid preview server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
