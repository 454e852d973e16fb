package config

import (
	"time"

	"github.com/MKhiriev/go-dev-server/internal/bundle"
)

// Default values of the development configuration.
const (
	DefaultHost               = "localhost"
	DefaultPort               = 8080
	DefaultDevtool            = "cheap-module-eval-source-map"
	DefaultAssetsPublicPath   = "/"
	DefaultAssetsSubDirectory = "static"
	DefaultStaticDir          = "static"
	DefaultIndexTemplate      = "index.html"
	DefaultServeDir           = "dist"
	StdoutOutput              = "-"
	DefaultResolveTimeout     = 30 * time.Second
	DefaultReadyTimeout       = 10 * time.Second
	DefaultMaxAttempts        = 100
	DefaultHighestPort        = maxPort
)

// Defaults returns the built-in configuration layer.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Dev: Dev{
			Host:               DefaultHost,
			Port:               DefaultPort,
			Devtool:            DefaultDevtool,
			CSSSourceMap:       boolPtr(true),
			AutoOpenBrowser:    boolPtr(false),
			ErrorOverlay:       boolPtr(true),
			NotifyOnErrors:     boolPtr(true),
			Poll:               &bundle.Poll{},
			AssetsPublicPath:   DefaultAssetsPublicPath,
			AssetsSubDirectory: DefaultAssetsSubDirectory,
			ProxyTable:         map[string]bundle.ProxyRule{},
		},
		Build: Build{
			ProjectDir:     ".",
			StaticDir:      DefaultStaticDir,
			IndexTemplate:  DefaultIndexTemplate,
			OutputPath:     StdoutOutput,
			ResolveTimeout: DefaultResolveTimeout,
		},
		Finder: Finder{
			MaxAttempts: DefaultMaxAttempts,
			HighestPort: DefaultHighestPort,
		},
		Server: Server{
			ServeDir:     DefaultServeDir,
			ReadyTimeout: DefaultReadyTimeout,
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
