package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/mattn/go-isatty"

	"github.com/MKhiriev/go-dev-server/internal/adapter"
	"github.com/MKhiriev/go-dev-server/internal/bundle"
	"github.com/MKhiriev/go-dev-server/internal/config"
	handlerhttp "github.com/MKhiriev/go-dev-server/internal/handler/http"
	"github.com/MKhiriev/go-dev-server/internal/logger"
	"github.com/MKhiriev/go-dev-server/internal/notify"
	"github.com/MKhiriev/go-dev-server/internal/portfinder"
	"github.com/MKhiriev/go-dev-server/internal/resolver"
	"github.com/MKhiriev/go-dev-server/internal/server"
	"github.com/MKhiriev/go-dev-server/internal/tui"
	"github.com/MKhiriev/go-dev-server/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Fprintln(os.Stderr, tui.RenderBuildInfo(buildInfo))

	log := newLogger()
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Object("build", buildInfo).Msg("received configs")

	result, err := resolve(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving dev config")
	}

	if err = result.Config.WriteFile(cfg.Build.OutputPath); err != nil {
		log.Fatal().Err(err).Msg("error writing dev config")
	}

	if !cfg.Server.Serve {
		return
	}
	if err = serve(result.Config, cfg, buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("error running preview server")
	}
}

func newLogger() *logger.Logger {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		return logger.NewConsoleLogger("devserver", os.Stderr)
	}
	return logger.NewLogger("devserver")
}

func resolve(cfg *config.StructuredConfig, log *logger.Logger) (resolver.Result, error) {
	base, err := loadBase(cfg)
	if err != nil {
		return resolver.Result{}, err
	}

	finder := portfinder.NewFinder(portfinder.Options{
		Host:        cfg.Env.HostOr(cfg.Dev.Host),
		HighestPort: cfg.Finder.HighestPort,
		MaxAttempts: cfg.Finder.MaxAttempts,
	}, nil, log.Named("portfinder"))
	notifier := notify.NewNotifier(notify.ProjectName(cfg.Build.ProjectDir), os.Stderr, log.Named("notify"))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Build.ResolveTimeout)
	defer cancel()

	return resolver.NewResolver(base, cfg, finder, notifier, log.Named("resolver")).
		Resolve(ctx).
		Wait(ctx)
}

func loadBase(cfg *config.StructuredConfig) (*bundle.Config, error) {
	if cfg.Build.BaseConfigPath != "" {
		return bundle.LoadBase(cfg.Build.BaseConfigPath)
	}
	return bundle.DefaultBase(bundle.BaseOptions{
		ProjectDir:         cfg.Build.ProjectDir,
		AssetsSubDirectory: cfg.Dev.AssetsSubDirectory,
		PublicPath:         cfg.Dev.AssetsPublicPath,
	}), nil
}

func serve(resolved *bundle.Config, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	serveDir := cfg.Server.ServeDir
	if !filepath.IsAbs(serveDir) {
		serveDir = filepath.Join(cfg.Build.ProjectDir, serveDir)
	}

	handler := handlerhttp.NewHandler(resolved.DevServer, handlerhttp.OptionsFromConfig(resolved, serveDir), buildInfo, log.Named("http"))
	router, err := handler.Init()
	if err != nil {
		return fmt.Errorf("error creating router: %w", err)
	}

	addr := net.JoinHostPort(resolved.DevServer.Host, strconv.Itoa(resolved.DevServer.Port))
	srv, err := server.NewServer(router, addr, log.Named("server"))
	if err != nil {
		return err
	}
	// the port may have been taken since discovery
	if err = srv.Listen(); err != nil {
		return err
	}

	prober := adapter.NewHTTPProber(adapter.ProberConfig{Timeout: cfg.Server.ReadyTimeout}, log.Named("adapter"))
	go func() {
		url := resolved.DevServer.URL()
		if err := prober.WaitReady(context.Background(), url); err != nil {
			log.Err(err).Str("url", url).Msg("preview server is not ready")
			return
		}
		fmt.Fprintln(os.Stderr, tui.RenderRunning(url, proxyNotes(resolved.DevServer)...))
	}()

	return srv.RunServer()
}

func proxyNotes(ds *bundle.DevServer) []string {
	notes := make([]string, 0, len(ds.Proxy))
	for path, rule := range ds.Proxy {
		notes = append(notes, fmt.Sprintf("proxy %s -> %s", path, rule.Target))
	}
	sort.Strings(notes)
	return notes
}
