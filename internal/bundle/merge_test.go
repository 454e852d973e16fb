// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBase() *Config {
	return &Config{
		Entry:   map[string][]string{"app": {"./src/main.js"}},
		Output:  Output{Path: "/project/dist", Filename: "[name].js", PublicPath: "/"},
		Resolve: Resolve{Extensions: []string{".js"}, Alias: map[string]string{"@": "/project/src"}},
		Module:  Module{Rules: []Rule{{Test: `\.vue$`, Loader: "vue-loader"}}},
		Devtool: "source-map",
		Plugins: []Plugin{{Name: "BasePlugin"}},
	}
}

func newOverlay() *Config {
	return &Config{
		Entry:   map[string][]string{"app": {"webpack-hot-client"}},
		Resolve: Resolve{Extensions: []string{".vue"}, Alias: map[string]string{"vue$": "vue/dist/vue.esm.js"}},
		Module:  Module{Rules: []Rule{{Test: `\.css$`, Use: []Loader{{Loader: "css-loader"}}}}},
		Devtool: "cheap-module-eval-source-map",
		DevServer: &DevServer{
			Host: "localhost",
			Port: 8080,
			Hot:  true,
		},
		Plugins: []Plugin{HotModuleReplacementPlugin()},
	}
}

func TestMerge_ScalarsOverriddenByOverlay(t *testing.T) {
	merged, err := Merge(newBase(), newOverlay())
	require.NoError(t, err)

	assert.Equal(t, "cheap-module-eval-source-map", merged.Devtool)
}

func TestMerge_ZeroOverlayScalarKeepsBase(t *testing.T) {
	overlay := newOverlay()
	overlay.Devtool = ""

	merged, err := Merge(newBase(), overlay)
	require.NoError(t, err)

	assert.Equal(t, "source-map", merged.Devtool)
	assert.Equal(t, "/project/dist", merged.Output.Path)
	assert.Equal(t, "[name].js", merged.Output.Filename)
}

func TestMerge_ListsConcatenateBaseFirst(t *testing.T) {
	merged, err := Merge(newBase(), newOverlay())
	require.NoError(t, err)

	require.Len(t, merged.Module.Rules, 2)
	assert.Equal(t, `\.vue$`, merged.Module.Rules[0].Test)
	assert.Equal(t, `\.css$`, merged.Module.Rules[1].Test)

	assert.Equal(t, []string{"BasePlugin", PluginHotModuleReplacement}, merged.PluginNames())
	assert.Equal(t, []string{".js", ".vue"}, merged.Resolve.Extensions)
}

func TestMerge_MapsMergeKeyWise(t *testing.T) {
	merged, err := Merge(newBase(), newOverlay())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"@":    "/project/src",
		"vue$": "vue/dist/vue.esm.js",
	}, merged.Resolve.Alias)
	assert.Equal(t, []string{"./src/main.js", "webpack-hot-client"}, merged.Entry["app"])
}

func TestMerge_DevServerTakenFromOverlay(t *testing.T) {
	merged, err := Merge(newBase(), newOverlay())
	require.NoError(t, err)

	require.NotNil(t, merged.DevServer)
	assert.Equal(t, "localhost", merged.DevServer.Host)
	assert.Equal(t, 8080, merged.DevServer.Port)
	assert.True(t, merged.DevServer.Hot)
}

func TestMerge_DevServerFieldsMerge(t *testing.T) {
	base := newBase()
	base.DevServer = &DevServer{Host: "0.0.0.0", PublicPath: "/app/", ClientLogLevel: "info"}

	merged, err := Merge(base, newOverlay())
	require.NoError(t, err)

	require.NotNil(t, merged.DevServer)
	assert.Equal(t, "localhost", merged.DevServer.Host)
	assert.Equal(t, "/app/", merged.DevServer.PublicPath)
	assert.Equal(t, "info", merged.DevServer.ClientLogLevel)
	assert.Equal(t, 8080, merged.DevServer.Port)
}

func TestMerge_DisabledDevServerTogglesOverrideBase(t *testing.T) {
	base := newBase()
	base.DevServer = &DevServer{
		Hot:          true,
		ContentBase:  true,
		Compress:     true,
		Open:         true,
		Overlay:      Overlay{Enabled: true, Warnings: true, Errors: true},
		Quiet:        true,
		WatchOptions: WatchOptions{Poll: Poll{Enabled: true, Interval: 1000}},
	}
	overlay := newOverlay()
	overlay.DevServer = &DevServer{Host: "localhost", Port: 8080}

	merged, err := Merge(base, overlay)
	require.NoError(t, err)

	require.NotNil(t, merged.DevServer)
	assert.False(t, merged.DevServer.Hot)
	assert.False(t, merged.DevServer.ContentBase)
	assert.False(t, merged.DevServer.Compress)
	assert.False(t, merged.DevServer.Open)
	assert.Equal(t, Overlay{}, merged.DevServer.Overlay)
	assert.False(t, merged.DevServer.Quiet)
	assert.Equal(t, WatchOptions{}, merged.DevServer.WatchOptions)
	assert.True(t, base.DevServer.Open)
}

func TestMerge_EnabledDevServerTogglesOverrideBase(t *testing.T) {
	base := newBase()
	base.DevServer = &DevServer{Overlay: Overlay{Enabled: true, Warnings: true, Errors: true}}
	overlay := newOverlay()
	overlay.DevServer.Overlay = ErrorsOnlyOverlay()
	overlay.DevServer.WatchOptions = WatchOptions{Poll: Poll{Enabled: true}}

	merged, err := Merge(base, overlay)
	require.NoError(t, err)

	assert.Equal(t, ErrorsOnlyOverlay(), merged.DevServer.Overlay)
	assert.Equal(t, Poll{Enabled: true}, merged.DevServer.WatchOptions.Poll)
	assert.True(t, merged.DevServer.Hot)
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	base := newBase()
	overlay := newOverlay()

	merged, err := Merge(base, overlay)
	require.NoError(t, err)
	merged.DevServer.Port = 9999
	merged.Resolve.Alias["extra"] = "x"

	assert.Equal(t, newBase(), base)
	assert.Equal(t, newOverlay(), overlay)
}

func TestMerge_Deterministic(t *testing.T) {
	first, err := Merge(newBase(), newOverlay())
	require.NoError(t, err)
	second, err := Merge(newBase(), newOverlay())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMerge_NilArguments(t *testing.T) {
	merged, err := Merge(nil, newOverlay())
	require.NoError(t, err)
	assert.Equal(t, "cheap-module-eval-source-map", merged.Devtool)

	merged, err = Merge(newBase(), nil)
	require.NoError(t, err)
	assert.Equal(t, newBase(), merged)
}

func TestClone_IsDeep(t *testing.T) {
	orig := newOverlay()
	orig.DevServer.Proxy = map[string]ProxyRule{
		"/api": {Target: "http://localhost:3000", PathRewrite: map[string]string{"^/api": ""}},
	}
	orig.Node = map[string]any{"fs": "empty", "nested": map[string]any{"a": 1}}

	c := orig.Clone()
	c.DevServer.Proxy["/api"].PathRewrite["^/api"] = "/v1"
	c.Node["nested"].(map[string]any)["a"] = 2
	c.Module.Rules[0].Use[0].Loader = "changed"
	c.Entry["app"][0] = "changed"

	assert.Equal(t, "", orig.DevServer.Proxy["/api"].PathRewrite["^/api"])
	assert.Equal(t, 1, orig.Node["nested"].(map[string]any)["a"])
	assert.Equal(t, "css-loader", orig.Module.Rules[0].Use[0].Loader)
	assert.Equal(t, "webpack-hot-client", orig.Entry["app"][0])
}
