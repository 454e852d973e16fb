// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// BaseOptions parameterises the built-in base configuration.
type BaseOptions struct {
	// ProjectDir is the project root; src/, test/ and dist/ live below it.
	ProjectDir string
	// AssetsSubDirectory prefixes emitted image, media and font assets.
	AssetsSubDirectory string
	// PublicPath is the URL prefix the assets are served under.
	PublicPath string
}

const urlLoaderLimit = 10000

// DefaultBase returns the base configuration shared by every build of a
// single-page application: one "app" entry, script and single-file component
// rules, and url-loader rules for images, media and fonts.
func DefaultBase(opts BaseOptions) *Config {
	resolve := func(dir string) string {
		return filepath.Join(opts.ProjectDir, dir)
	}
	assetsPath := func(p string) string {
		return path.Join(opts.AssetsSubDirectory, p)
	}

	return &Config{
		Context: opts.ProjectDir,
		Entry:   map[string][]string{"app": {"./src/main.js"}},
		Output: Output{
			Path:       resolve("dist"),
			Filename:   "[name].js",
			PublicPath: opts.PublicPath,
		},
		Resolve: Resolve{
			Extensions: []string{".js", ".vue", ".json"},
			Alias: map[string]string{
				"vue$": "vue/dist/vue.esm.js",
				"@":    resolve("src"),
			},
		},
		Module: Module{Rules: []Rule{
			{Test: `\.vue$`, Loader: "vue-loader"},
			{
				Test:    `\.js$`,
				Loader:  "babel-loader",
				Include: []string{resolve("src"), resolve("test"), resolve("node_modules/webpack-dev-server/client")},
			},
			urlLoaderRule(`\.(png|jpe?g|gif|svg)(\?.*)?$`, assetsPath("img/[name].[hash:7].[ext]")),
			urlLoaderRule(`\.(mp4|webm|ogg|mp3|wav|flac|aac)(\?.*)?$`, assetsPath("media/[name].[hash:7].[ext]")),
			urlLoaderRule(`\.(woff2?|eot|ttf|otf)(\?.*)?$`, assetsPath("fonts/[name].[hash:7].[ext]")),
		}},
		Node: map[string]any{
			"setImmediate":  false,
			"dgram":         "empty",
			"fs":            "empty",
			"net":           "empty",
			"tls":           "empty",
			"child_process": "empty",
		},
	}
}

func urlLoaderRule(test, name string) Rule {
	return Rule{
		Test:    test,
		Loader:  "url-loader",
		Options: map[string]any{"limit": urlLoaderLimit, "name": name},
	}
}

// LoadBase reads a base configuration from a .json, .yaml or .yml file.
func LoadBase(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading base config: %w", err)
	}

	cfg := new(Config)
	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".json":
		err = json.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding base config %s: %w", filePath, err)
	}

	return cfg, nil
}
