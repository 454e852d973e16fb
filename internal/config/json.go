package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-dev-server/internal/bundle"
)

// StructuredJSONConfig is the on-disk shape of the JSON settings file.
// Keys are snake_case; omitted keys leave lower-priority values untouched.
type StructuredJSONConfig struct {
	Dev struct {
		Host               string                   `json:"host"`
		Port               int                      `json:"port"`
		Devtool            string                   `json:"devtool"`
		CSSSourceMap       *bool                    `json:"css_source_map"`
		AutoOpenBrowser    *bool                    `json:"auto_open_browser"`
		ErrorOverlay       *bool                    `json:"error_overlay"`
		NotifyOnErrors     *bool                    `json:"notify_on_errors"`
		Poll               *bundle.Poll             `json:"poll"`
		AssetsPublicPath   string                   `json:"assets_public_path"`
		AssetsSubDirectory string                   `json:"assets_sub_directory"`
		ProxyTable         map[string]jsonProxyRule `json:"proxy_table"`
		Define             map[string]string        `json:"define"`
	} `json:"dev,omitempty"`

	Build struct {
		ProjectDir     string   `json:"project_dir"`
		BaseConfigPath string   `json:"base_config"`
		StaticDir      string   `json:"static_dir"`
		IndexTemplate  string   `json:"index_template"`
		OutputPath     string   `json:"output"`
		ResolveTimeout Duration `json:"resolve_timeout"`
	} `json:"build,omitempty"`

	Finder struct {
		MaxAttempts int `json:"max_attempts"`
		HighestPort int `json:"highest_port"`
	} `json:"finder,omitempty"`

	Server struct {
		Serve        bool     `json:"serve"`
		ServeDir     string   `json:"serve_dir"`
		ReadyTimeout Duration `json:"ready_timeout"`
	} `json:"server,omitempty"`
}

// jsonProxyRule is a proxy_table entry. A bare string is accepted as the
// target.
type jsonProxyRule struct {
	Target       string            `json:"target"`
	ChangeOrigin bool              `json:"change_origin"`
	PathRewrite  map[string]string `json:"path_rewrite"`
	WS           bool              `json:"ws"`
}

func (r *jsonProxyRule) UnmarshalJSON(b []byte) error {
	var target string
	if err := json.Unmarshal(b, &target); err == nil {
		*r = jsonProxyRule{Target: target}
		return nil
	}

	type plain jsonProxyRule
	return json.Unmarshal(b, (*plain)(r))
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	var proxyTable map[string]bundle.ProxyRule
	if len(jsonCfg.Dev.ProxyTable) > 0 {
		proxyTable = make(map[string]bundle.ProxyRule, len(jsonCfg.Dev.ProxyTable))
		for context, rule := range jsonCfg.Dev.ProxyTable {
			proxyTable[context] = bundle.ProxyRule{
				Target:       rule.Target,
				ChangeOrigin: rule.ChangeOrigin,
				PathRewrite:  rule.PathRewrite,
				WS:           rule.WS,
			}
		}
	}

	cfg := &StructuredConfig{
		Dev: Dev{
			Host:               jsonCfg.Dev.Host,
			Port:               jsonCfg.Dev.Port,
			Devtool:            jsonCfg.Dev.Devtool,
			CSSSourceMap:       jsonCfg.Dev.CSSSourceMap,
			AutoOpenBrowser:    jsonCfg.Dev.AutoOpenBrowser,
			ErrorOverlay:       jsonCfg.Dev.ErrorOverlay,
			NotifyOnErrors:     jsonCfg.Dev.NotifyOnErrors,
			Poll:               jsonCfg.Dev.Poll,
			AssetsPublicPath:   jsonCfg.Dev.AssetsPublicPath,
			AssetsSubDirectory: jsonCfg.Dev.AssetsSubDirectory,
			ProxyTable:         proxyTable,
			Define:             jsonCfg.Dev.Define,
		},
		Build: Build{
			ProjectDir:     jsonCfg.Build.ProjectDir,
			BaseConfigPath: jsonCfg.Build.BaseConfigPath,
			StaticDir:      jsonCfg.Build.StaticDir,
			IndexTemplate:  jsonCfg.Build.IndexTemplate,
			OutputPath:     jsonCfg.Build.OutputPath,
			ResolveTimeout: time.Duration(jsonCfg.Build.ResolveTimeout),
		},
		Finder: Finder{
			MaxAttempts: jsonCfg.Finder.MaxAttempts,
			HighestPort: jsonCfg.Finder.HighestPort,
		},
		Server: Server{
			Serve:        jsonCfg.Server.Serve,
			ServeDir:     jsonCfg.Server.ServeDir,
			ReadyTimeout: time.Duration(jsonCfg.Server.ReadyTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
