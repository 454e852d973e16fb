// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"github.com/MKhiriev/go-dev-server/internal/bundle"
	"github.com/MKhiriev/go-dev-server/internal/config"
	"github.com/MKhiriev/go-dev-server/internal/logger"
)

const clientLogLevel = "warning"

// Resolver builds the development configuration from a base configuration,
// the dev defaults and the environment snapshot.
type Resolver struct {
	base  *bundle.Config
	dev   config.Dev
	build config.Build
	env   config.Environment

	finder   PortFinder
	notifier Notifier

	logger *logger.Logger
}

// NewResolver returns a Resolver. A nil notifier disables error
// notifications regardless of Dev.NotifyOnErrors.
func NewResolver(base *bundle.Config, cfg *config.StructuredConfig, finder PortFinder, notifier Notifier, logger *logger.Logger) *Resolver {
	return &Resolver{
		base:     base,
		dev:      cfg.Dev,
		build:    cfg.Build,
		env:      cfg.Env,
		finder:   finder,
		notifier: notifier,
		logger:   logger,
	}
}

// Resolve merges the configuration and starts port discovery. The returned
// Deferred completes once discovery finishes.
func (r *Resolver) Resolve(ctx context.Context) *Deferred {
	d := newDeferred()

	// Merge only fails on mismatched types, which typed configs rule out.
	merged, err := bundle.Merge(r.base, r.overlay())
	if err != nil {
		d.complete(Result{Env: r.env}, fmt.Errorf("error building dev config: %w", err))
		return d
	}

	start := r.startPort()
	r.logger.Debug().
		Str("host", merged.DevServer.Host).
		Int("start_port", start).
		Msg("looking for a free port")

	results := r.finder.GetPortAsync(ctx, start)
	go func() {
		res, ok := <-results
		switch {
		case !ok:
			r.reject(d, ErrNoPortResult)
		case res.Err != nil:
			r.reject(d, res.Err)
		default:
			r.accept(d, merged, res.Port)
		}
	}()

	return d
}

func (r *Resolver) accept(d *Deferred, cfg *bundle.Config, port int) {
	cfg.DevServer.Port = port

	var onErrors bundle.ErrorCallback
	if config.Enabled(r.dev.NotifyOnErrors) && r.notifier != nil {
		onErrors = r.notifier.Notify
	}
	cfg.Plugins = append(cfg.Plugins, bundle.FriendlyErrorsPlugin(cfg.DevServer.URL(), onErrors))

	if d.complete(Result{Config: cfg, Env: r.env.WithPort(port)}, nil) {
		r.logger.Info().Str("url", cfg.DevServer.URL()).Msg("dev config resolved")
	}
}

func (r *Resolver) reject(d *Deferred, err error) {
	if d.complete(Result{Env: r.env}, err) {
		r.logger.Err(err).Msg("port discovery failed")
	}
}

// startPort is the first port candidate: PORT, or the default port.
func (r *Resolver) startPort() int {
	return r.env.PortOr(r.dev.Port)
}

// overlay is the development configuration merged over the base. Its
// plugins are appended after the base plugins.
func (r *Resolver) overlay() *bundle.Config {
	publicPath := r.dev.AssetsPublicPath

	var overlay bundle.Overlay
	if config.Enabled(r.dev.ErrorOverlay) {
		overlay = bundle.ErrorsOnlyOverlay()
	}

	var poll bundle.Poll
	if r.dev.Poll != nil {
		poll = *r.dev.Poll
	}

	return &bundle.Config{
		Module: bundle.Module{
			Rules: bundle.StyleLoaders(bundle.StyleOptions{
				SourceMap:  config.Enabled(r.dev.CSSSourceMap),
				UsePostCSS: true,
			}),
		},
		Devtool: r.dev.Devtool,
		DevServer: &bundle.DevServer{
			ClientLogLevel: clientLogLevel,
			HistoryAPIFallback: &bundle.HistoryAPIFallback{
				Rewrites: []bundle.Rewrite{{
					From: ".*",
					To:   path.Join(publicPath, "index.html"),
				}},
			},
			Hot:          true,
			ContentBase:  false,
			Compress:     true,
			Host:         r.env.HostOr(r.dev.Host),
			Port:         r.startPort(),
			Open:         config.Enabled(r.dev.AutoOpenBrowser),
			Overlay:      overlay,
			PublicPath:   publicPath,
			Proxy:        r.dev.ProxyTable,
			Quiet:        true,
			WatchOptions: bundle.WatchOptions{Poll: poll},
		},
		Plugins: r.plugins(),
	}
}

// plugins are the development plugins attached before port discovery.
// The notification plugin is appended only once a port is found.
func (r *Resolver) plugins() []bundle.Plugin {
	return []bundle.Plugin{
		bundle.DefinePlugin(bundle.DevelopmentEnv(r.dev.Define)),
		bundle.HotModuleReplacementPlugin(),
		bundle.NamedModulesPlugin(),
		bundle.NoEmitOnErrorsPlugin(),
		bundle.HTMLPlugin(r.build.IndexTemplate),
		bundle.CopyPlugin(r.staticDir(), r.dev.AssetsSubDirectory),
	}
}

// staticDir resolves the static assets directory against the project.
func (r *Resolver) staticDir() string {
	if filepath.IsAbs(r.build.StaticDir) {
		return r.build.StaticDir
	}
	return filepath.Join(r.build.ProjectDir, r.build.StaticDir)
}
