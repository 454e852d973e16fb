// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-dev-server/internal/bundle"
)

// StructuredConfig is the top-level configuration container of the dev
// server. It is populated by merging defaults, an optional JSON file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Env is the HOST / PORT snapshot. It is read without a prefix.
	Env Environment

	// Dev holds the development defaults the resolver builds the dev
	// overlay from.
	Dev Dev `envPrefix:"DEV_"`

	// Build locates the project, the base configuration and the output.
	Build Build `envPrefix:"BUILD_"`

	// Finder bounds port discovery.
	Finder Finder `envPrefix:"FINDER_"`

	// Server configures the optional preview server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Dev holds the development defaults. Tri-state toggles are pointers so that
// an explicit false in a later source overrides a true default.
type Dev struct {
	// Host is the default dev server host.
	// Env: DEV_HOST
	Host string `env:"HOST"`

	// Port is the default dev server port and the first discovery candidate.
	// Env: DEV_PORT
	Port int `env:"PORT"`

	// Devtool is the source-map mode (e.g. "cheap-module-eval-source-map").
	// Env: DEV_DEVTOOL
	Devtool string `env:"DEVTOOL"`

	// CSSSourceMap enables source maps in the style loaders.
	// Env: DEV_CSS_SOURCE_MAP
	CSSSourceMap *bool `env:"CSS_SOURCE_MAP"`

	// AutoOpenBrowser opens the browser once the dev server is up.
	// Env: DEV_AUTO_OPEN_BROWSER
	AutoOpenBrowser *bool `env:"AUTO_OPEN_BROWSER"`

	// ErrorOverlay shows compile errors in the browser.
	// Env: DEV_ERROR_OVERLAY
	ErrorOverlay *bool `env:"ERROR_OVERLAY"`

	// NotifyOnErrors wires the error notification callback.
	// Env: DEV_NOTIFY_ON_ERRORS
	NotifyOnErrors *bool `env:"NOTIFY_ON_ERRORS"`

	// Poll is the watcher polling mode: "false", "true" or milliseconds.
	// Env: DEV_POLL
	Poll *bundle.Poll `env:"POLL"`

	// AssetsPublicPath is the URL prefix the application is served under.
	// Env: DEV_ASSETS_PUBLIC_PATH
	AssetsPublicPath string `env:"ASSETS_PUBLIC_PATH"`

	// AssetsSubDirectory is where static assets are copied to.
	// Env: DEV_ASSETS_SUB_DIRECTORY
	AssetsSubDirectory string `env:"ASSETS_SUB_DIRECTORY"`

	// ProxyTable maps a context path to a proxy rule. JSON and flags only.
	ProxyTable map[string]bundle.ProxyRule

	// Define holds extra process.env definitions (raw, unquoted values).
	// Env: DEV_DEFINE=API_URL=http://localhost:3000,FEATURE=on
	Define map[string]string `env:"DEFINE" envKeyValSeparator:"="`
}

// Build locates the project and where the resolved configuration goes.
type Build struct {
	// ProjectDir is the project root.
	// Env: BUILD_PROJECT_DIR
	ProjectDir string `env:"PROJECT_DIR"`

	// BaseConfigPath is a JSON or YAML base configuration. Empty selects the
	// built-in base.
	// Env: BUILD_BASE_CONFIG
	BaseConfigPath string `env:"BASE_CONFIG"`

	// StaticDir holds the static assets copied verbatim (dotfiles excluded).
	// Relative paths are resolved against ProjectDir.
	// Env: BUILD_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// IndexTemplate is the HTML template the HTML plugin renders.
	// Env: BUILD_INDEX_TEMPLATE
	IndexTemplate string `env:"INDEX_TEMPLATE"`

	// OutputPath receives the resolved configuration; "-" is stdout.
	// Env: BUILD_OUTPUT
	OutputPath string `env:"OUTPUT"`

	// ResolveTimeout bounds the whole resolution, port discovery included.
	// Env: BUILD_RESOLVE_TIMEOUT
	ResolveTimeout time.Duration `env:"RESOLVE_TIMEOUT"`
}

// Finder bounds port discovery.
type Finder struct {
	// MaxAttempts is the number of candidates probed.
	// Env: FINDER_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// HighestPort is the last candidate ever probed.
	// Env: FINDER_HIGHEST_PORT
	HighestPort int `env:"HIGHEST_PORT"`
}

// Server configures the preview server.
type Server struct {
	// Serve starts the preview server after resolution.
	// Env: SERVER_SERVE
	Serve bool `env:"SERVE"`

	// ServeDir is the bundler output directory served by the preview server.
	// Relative paths are resolved against Build.ProjectDir.
	// Env: SERVER_SERVE_DIR
	ServeDir string `env:"SERVE_DIR"`

	// ReadyTimeout bounds the readiness probe of the started server.
	// Env: SERVER_READY_TIMEOUT
	ReadyTimeout time.Duration `env:"READY_TIMEOUT"`
}

// Enabled reports whether an optional toggle is set to true.
func Enabled(b *bool) bool {
	return b != nil && *b
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources in priority order (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. JSON file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
