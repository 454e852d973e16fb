package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dev-server/internal/bundle"
)

func writeJSONFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := writeJSONFile(t, `{
		"dev": {
			"host": "dev.local",
			"port": 3000,
			"devtool": "eval-source-map",
			"css_source_map": false,
			"auto_open_browser": true,
			"error_overlay": false,
			"notify_on_errors": false,
			"poll": 1000,
			"assets_public_path": "/app/",
			"assets_sub_directory": "assets",
			"proxy_table": {
				"/api": {
					"target": "http://localhost:5000",
					"change_origin": true,
					"path_rewrite": {"^/api": ""}
				},
				"/legacy": "http://localhost:5001"
			},
			"define": {"API_URL": "http://localhost:5000"}
		},
		"build": {
			"project_dir": "/srv/project",
			"base_config": "base.yaml",
			"static_dir": "public",
			"index_template": "template.html",
			"output": "resolved.json",
			"resolve_timeout": "5s"
		},
		"finder": {
			"max_attempts": 10,
			"highest_port": 9100
		},
		"server": {
			"serve": true,
			"serve_dir": "build",
			"ready_timeout": "3s"
		}
	}`)

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "dev.local", cfg.Dev.Host)
	assert.Equal(t, 3000, cfg.Dev.Port)
	assert.Equal(t, "eval-source-map", cfg.Dev.Devtool)
	require.NotNil(t, cfg.Dev.CSSSourceMap)
	assert.False(t, *cfg.Dev.CSSSourceMap)
	assert.True(t, Enabled(cfg.Dev.AutoOpenBrowser))
	require.NotNil(t, cfg.Dev.ErrorOverlay)
	assert.False(t, *cfg.Dev.ErrorOverlay)
	require.NotNil(t, cfg.Dev.NotifyOnErrors)
	assert.False(t, *cfg.Dev.NotifyOnErrors)
	assert.Equal(t, &bundle.Poll{Enabled: true, Interval: 1000}, cfg.Dev.Poll)
	assert.Equal(t, "/app/", cfg.Dev.AssetsPublicPath)
	assert.Equal(t, "assets", cfg.Dev.AssetsSubDirectory)
	assert.Equal(t, map[string]bundle.ProxyRule{
		"/api": {
			Target:       "http://localhost:5000",
			ChangeOrigin: true,
			PathRewrite:  map[string]string{"^/api": ""},
		},
		"/legacy": {Target: "http://localhost:5001"},
	}, cfg.Dev.ProxyTable)
	assert.Equal(t, map[string]string{"API_URL": "http://localhost:5000"}, cfg.Dev.Define)

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

	assert.Empty(t, cfg.JSONFilePath)
}

// Omitted keys stay unset so they never override lower layers.
func TestParseJSON_PartialFile(t *testing.T) {
	p := writeJSONFile(t, `{"dev": {"devtool": "source-map"}}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "source-map", cfg.Dev.Devtool)
	assert.Nil(t, cfg.Dev.CSSSourceMap)
	assert.Nil(t, cfg.Dev.Poll)
	assert.Nil(t, cfg.Dev.ProxyTable)
	assert.Empty(t, cfg.Dev.Host)
	assert.Zero(t, cfg.Build.ResolveTimeout)
}

func TestParseJSON_DurationAsNumber(t *testing.T) {
	p := writeJSONFile(t, `{"build": {"resolve_timeout": 1500000000}}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, 1500*time.Millisecond, cfg.Build.ResolveTimeout)
}

func TestParseJSON_PollForms(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected *bundle.Poll
	}{
		{name: "false", body: `{"dev": {"poll": false}}`, expected: &bundle.Poll{}},
		{name: "true", body: `{"dev": {"poll": true}}`, expected: &bundle.Poll{Enabled: true}},
		{name: "interval", body: `{"dev": {"poll": 250}}`, expected: &bundle.Poll{Enabled: true, Interval: 250}},
		{name: "quoted interval", body: `{"dev": {"poll": "250"}}`, expected: &bundle.Poll{Enabled: true, Interval: 250}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseJSON(writeJSONFile(t, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Dev.Poll)
		})
	}
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	cfg, err := parseJSON(writeJSONFile(t, `{"dev": {`))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	cfg, err := parseJSON(writeJSONFile(t, `{"build": {"resolve_timeout": "soon"}}`))

	require.Error(t, err)
	assert.Nil(t, cfg)
}

// ── Duration ──────────────────────────────────────────────────────────────────

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
