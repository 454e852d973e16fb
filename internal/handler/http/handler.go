package http

import (
	"github.com/MKhiriev/go-dev-server/internal/bundle"
	"github.com/MKhiriev/go-dev-server/internal/logger"
	"github.com/MKhiriev/go-dev-server/models"
)

// Options locates the files the preview server reads.
type Options struct {
	// ServeDir is the bundler output directory.
	ServeDir string
	// StaticDir is the static assets directory.
	StaticDir string
	// AssetsSubDirectory is the URL segment static assets are served under,
	// below the public path.
	AssetsSubDirectory string
	// Ignore lists the globs of static files that are never served.
	Ignore []string
}

type Handler struct {
	devServer *bundle.DevServer
	opts      Options
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(devServer *bundle.DevServer, opts Options, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Str("serve_dir", opts.ServeDir).Msg("http handler created")
	return &Handler{
		devServer: devServer,
		opts:      opts,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// OptionsFromConfig derives Options from the copy plugin of a resolved
// configuration: its first pattern names the static directory, the assets
// sub-directory and the ignore globs.
func OptionsFromConfig(cfg *bundle.Config, serveDir string) Options {
	opts := Options{ServeDir: serveDir}

	plugin, ok := cfg.FindPlugin(bundle.PluginCopy)
	if !ok {
		return opts
	}
	patterns, ok := plugin.Options.([]bundle.CopyPattern)
	if !ok || len(patterns) == 0 {
		return opts
	}

	opts.StaticDir = patterns[0].From
	opts.AssetsSubDirectory = patterns[0].To
	opts.Ignore = patterns[0].Ignore
	return opts
}
