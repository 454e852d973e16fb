package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dev-server/internal/bundle"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// ── parseFlags ────────────────────────────────────────────────────────────────

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-host", "0.0.0.0",
		"-port", "9000",
		"-devtool", "eval-source-map",
		"-css-source-map=false",
		"-open",
		"-error-overlay=false",
		"-notify-on-errors=false",
		"-poll", "500",
		"-public-path", "/app/",
		"-assets-dir", "assets",
		"-proxy", "/api=http://localhost:3000",
		"-proxy", "/ws=ws://localhost:3001",
		"-define", "API_URL=http://localhost:3000",
		"-project", "/srv/project",
		"-base", "base.yaml",
		"-static", "public",
		"-template", "template.html",
		"-out", "resolved.json",
		"-resolve-timeout", "5s",
		"-max-port-attempts", "10",
		"-highest-port", "9100",
		"-serve",
		"-serve-dir", "build",
		"-ready-timeout", "3s",
		"-c", "/etc/devserver.json",
	}

	cfg, err := parseFlags(newTestFlagSet(), args)
	require.NoError(t, err)

	assert.Equal(t, Environment{Host: "0.0.0.0", Port: 9000}, cfg.Env)

	assert.Equal(t, "eval-source-map", cfg.Dev.Devtool)
	require.NotNil(t, cfg.Dev.CSSSourceMap)
	assert.False(t, *cfg.Dev.CSSSourceMap)
	assert.True(t, Enabled(cfg.Dev.AutoOpenBrowser))
	require.NotNil(t, cfg.Dev.ErrorOverlay)
	assert.False(t, *cfg.Dev.ErrorOverlay)
	require.NotNil(t, cfg.Dev.NotifyOnErrors)
	assert.False(t, *cfg.Dev.NotifyOnErrors)
	assert.Equal(t, &bundle.Poll{Enabled: true, Interval: 500}, cfg.Dev.Poll)
	assert.Equal(t, "/app/", cfg.Dev.AssetsPublicPath)
	assert.Equal(t, "assets", cfg.Dev.AssetsSubDirectory)
	assert.Equal(t, map[string]bundle.ProxyRule{
		"/api": {Target: "http://localhost:3000", ChangeOrigin: true},
		"/ws":  {Target: "ws://localhost:3001", ChangeOrigin: true},
	}, cfg.Dev.ProxyTable)
	assert.Equal(t, map[string]string{"API_URL": "http://localhost:3000"}, cfg.Dev.Define)

	assert.Equal(t, "/srv/project", cfg.Build.ProjectDir)
	assert.Equal(t, "base.yaml", cfg.Build.BaseConfigPath)
	assert.Equal(t, "public", cfg.Build.StaticDir)
	assert.Equal(t, "template.html", cfg.Build.IndexTemplate)
	assert.Equal(t, "resolved.json", cfg.Build.OutputPath)
	assert.Equal(t, 5*time.Second, cfg.Build.ResolveTimeout)

	assert.Equal(t, 10, cfg.Finder.MaxAttempts)
	assert.Equal(t, 9100, cfg.Finder.HighestPort)

	assert.True(t, cfg.Server.Serve)
	assert.Equal(t, "build", cfg.Server.ServeDir)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadyTimeout)

	assert.Equal(t, "/etc/devserver.json", cfg.JSONFilePath)
}

// Flags that are not given stay unset so they never override lower layers.
func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{"-config", "alias.json"})
	require.NoError(t, err)

	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "port not a number", args: []string{"-port", "abc"}},
		{name: "port out of range", args: []string{"-port", "70000"}},
		{name: "port zero", args: []string{"-port", "0"}},
		{name: "bad toggle", args: []string{"-open=maybe"}},
		{name: "bad poll", args: []string{"-poll", "sometimes"}},
		{name: "proxy without target", args: []string{"-proxy", "/api"}},
		{name: "proxy target not a url", args: []string{"-proxy", "/api=localhost"}},
		{name: "define without key", args: []string{"-define", "=value"}},
		{name: "bad duration", args: []string{"-resolve-timeout", "soon"}},
		{name: "unknown flag", args: []string{"-unknown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(newTestFlagSet(), tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}

// ── portFlag ──────────────────────────────────────────────────────────────────

func TestPortFlag_String(t *testing.T) {
	var empty portFlag
	assert.Equal(t, "", empty.String())

	p := portFlag(8080)
	assert.Equal(t, "8080", p.String())
}

// ── optionalBool ──────────────────────────────────────────────────────────────

func TestOptionalBool(t *testing.T) {
	var b optionalBool
	assert.Equal(t, "", b.String())
	assert.True(t, b.IsBoolFlag())

	require.NoError(t, b.Set("false"))
	require.NotNil(t, b.value)
	assert.False(t, *b.value)
	assert.Equal(t, "false", b.String())

	require.NoError(t, b.Set("true"))
	assert.True(t, *b.value)

	assert.Error(t, b.Set("yes please"))
}

// ── optionalPoll ──────────────────────────────────────────────────────────────

func TestOptionalPoll_Set(t *testing.T) {
	tests := []struct {
		input    string
		expected bundle.Poll
	}{
		{input: "false", expected: bundle.Poll{}},
		{input: "true", expected: bundle.Poll{Enabled: true}},
		{input: "1000", expected: bundle.Poll{Enabled: true, Interval: 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var p optionalPoll
			require.NoError(t, p.Set(tt.input))
			require.NotNil(t, p.value)
			assert.Equal(t, tt.expected, *p.value)
		})
	}
}

// ── proxyTableFlag ────────────────────────────────────────────────────────────

func TestProxyTableFlag_Set(t *testing.T) {
	var p proxyTableFlag

	require.NoError(t, p.Set("/api=http://localhost:3000"))
	require.NoError(t, p.Set("/api=https://api.example.com"))

	assert.Equal(t, proxyTableFlag{
		"/api": {Target: "https://api.example.com", ChangeOrigin: true},
	}, p)
	assert.Equal(t, "/api=https://api.example.com", p.String())
}

// ── keyValueFlag ──────────────────────────────────────────────────────────────

func TestKeyValueFlag_Set(t *testing.T) {
	var kv keyValueFlag

	require.NoError(t, kv.Set("A=1"))
	require.NoError(t, kv.Set("B=x=y"))
	require.NoError(t, kv.Set("EMPTY="))

	assert.Equal(t, keyValueFlag{"A": "1", "B": "x=y", "EMPTY": ""}, kv)

	err := kv.Set("novalue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KEY=VALUE")
}
