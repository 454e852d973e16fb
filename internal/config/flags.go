package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-dev-server/internal/bundle"
)

// ParseFlags parses the process command line.
//
// Flags:
//
//	-host dev server host (overrides HOST)
//	-port first port candidate (overrides PORT)
//	-devtool source-map mode
//	-css-source-map, -open, -error-overlay, -notify-on-errors toggles
//	-poll watcher polling: true, false or milliseconds
//	-public-path assets public path
//	-assets-dir assets sub-directory
//	-proxy context=target, repeatable
//	-define KEY=VALUE process.env definition, repeatable
//	-project project directory
//	-base base bundler config (.json, .yaml, .yml)
//	-static static assets directory
//	-template HTML template
//	-out output file for the resolved config ("-" is stdout)
//	-resolve-timeout resolution deadline (e.g., "30s")
//	-max-port-attempts port candidates to probe
//	-highest-port highest port candidate
//	-serve start the preview server
//	-serve-dir directory served by the preview server
//	-ready-timeout readiness probe deadline
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		host, devtool, publicPath, assetsDir                 string
		projectDir, baseConfig, staticDir, template, output  string
		serveDir, jsonConfigPath                             string
		port                                                 portFlag
		cssSourceMap, autoOpen, errorOverlay, notifyOnErrors optionalBool
		poll                                                 optionalPoll
		proxy                                                proxyTableFlag
		define                                               keyValueFlag
		resolveTimeout, readyTimeout                         time.Duration
		maxPortAttempts, highestPort                         int
		serve                                                bool
	)

	fs.StringVar(&host, "host", "", "Dev server host")
	fs.Var(&port, "port", "First port candidate")
	fs.StringVar(&devtool, "devtool", "", "Source-map mode")
	fs.Var(&cssSourceMap, "css-source-map", "Enable CSS source maps")
	fs.Var(&autoOpen, "open", "Open the browser on start")
	fs.Var(&errorOverlay, "error-overlay", "Show compile errors in the browser")
	fs.Var(&notifyOnErrors, "notify-on-errors", "Notify about compile errors")
	fs.Var(&poll, "poll", "Watcher polling: true, false or interval in ms")
	fs.StringVar(&publicPath, "public-path", "", "Assets public path")
	fs.StringVar(&assetsDir, "assets-dir", "", "Assets sub-directory")
	fs.Var(&proxy, "proxy", "Proxy rule context=target (repeatable)")
	fs.Var(&define, "define", "process.env definition KEY=VALUE (repeatable)")
	fs.StringVar(&projectDir, "project", "", "Project directory")
	fs.StringVar(&baseConfig, "base", "", "Base bundler config (.json, .yaml, .yml)")
	fs.StringVar(&staticDir, "static", "", "Static assets directory")
	fs.StringVar(&template, "template", "", "HTML template")
	fs.StringVar(&output, "out", "", "Output file for the resolved config (- is stdout)")
	fs.DurationVar(&resolveTimeout, "resolve-timeout", 0, "Resolution deadline (e.g., 30s)")
	fs.IntVar(&maxPortAttempts, "max-port-attempts", 0, "Port candidates to probe")
	fs.IntVar(&highestPort, "highest-port", 0, "Highest port candidate")
	fs.BoolVar(&serve, "serve", false, "Start the preview server")
	fs.StringVar(&serveDir, "serve-dir", "", "Directory served by the preview server")
	fs.DurationVar(&readyTimeout, "ready-timeout", 0, "Readiness probe deadline (e.g., 10s)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Env: Environment{
			Host: host,
			Port: Port(port),
		},
		Dev: Dev{
			Devtool:            devtool,
			CSSSourceMap:       cssSourceMap.value,
			AutoOpenBrowser:    autoOpen.value,
			ErrorOverlay:       errorOverlay.value,
			NotifyOnErrors:     notifyOnErrors.value,
			Poll:               poll.value,
			AssetsPublicPath:   publicPath,
			AssetsSubDirectory: assetsDir,
			ProxyTable:         proxy,
			Define:             define,
		},
		Build: Build{
			ProjectDir:     projectDir,
			BaseConfigPath: baseConfig,
			StaticDir:      staticDir,
			IndexTemplate:  template,
			OutputPath:     output,
			ResolveTimeout: resolveTimeout,
		},
		Finder: Finder{
			MaxAttempts: maxPortAttempts,
			HighestPort: highestPort,
		},
		Server: Server{
			Serve:        serve,
			ServeDir:     serveDir,
			ReadyTimeout: readyTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// portFlag is a TCP port given on the command line. Unlike PORT in the
// environment, an invalid value is an error.
type portFlag int

func (p *portFlag) String() string {
	if p == nil || *p == 0 {
		return ""
	}
	return strconv.Itoa(int(*p))
}

func (p *portFlag) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if n < 1 || n > maxPort {
		return errors.New("port number must be in range 1..65535")
	}
	*p = portFlag(n)
	return nil
}

// optionalBool is a boolean flag that remembers whether it was given.
type optionalBool struct {
	value *bool
}

func (b *optionalBool) String() string {
	if b == nil || b.value == nil {
		return ""
	}
	return strconv.FormatBool(*b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value = &v
	return nil
}

// IsBoolFlag lets the flag be given without a value (-open).
func (b *optionalBool) IsBoolFlag() bool {
	return true
}

// optionalPoll is a poll flag that remembers whether it was given.
type optionalPoll struct {
	value *bundle.Poll
}

func (p *optionalPoll) String() string {
	if p == nil || p.value == nil {
		return ""
	}
	return p.value.String()
}

func (p *optionalPoll) Set(s string) error {
	v := new(bundle.Poll)
	if err := v.Set(s); err != nil {
		return err
	}
	p.value = v
	return nil
}

// proxyTableFlag collects context=target proxy rules.
type proxyTableFlag map[string]bundle.ProxyRule

func (p *proxyTableFlag) String() string {
	if p == nil {
		return ""
	}
	rules := make([]string, 0, len(*p))
	for context, rule := range *p {
		rules = append(rules, context+"="+rule.Target)
	}
	return strings.Join(rules, ",")
}

func (p *proxyTableFlag) Set(s string) error {
	context, target, ok := strings.Cut(s, "=")
	if !ok || context == "" || target == "" {
		return errors.New("need proxy rule in a form `context=target`")
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("incorrect proxy target %q", target)
	}

	if *p == nil {
		*p = make(proxyTableFlag)
	}
	(*p)[context] = bundle.ProxyRule{Target: target, ChangeOrigin: true}
	return nil
}

// keyValueFlag collects KEY=VALUE pairs.
type keyValueFlag map[string]string

func (kv *keyValueFlag) String() string {
	if kv == nil {
		return ""
	}
	pairs := make([]string, 0, len(*kv))
	for k, v := range *kv {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (kv *keyValueFlag) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return errors.New("need definition in a form `KEY=VALUE`")
	}

	if *kv == nil {
		*kv = make(keyValueFlag)
	}
	(*kv)[key] = value
	return nil
}
