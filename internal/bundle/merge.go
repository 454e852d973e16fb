// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"fmt"
	"maps"
	"slices"

	"dario.cat/mergo"
)

// Merge deep-merges overlay onto a copy of base and returns the result.
// Neither argument is modified.
//
// Structs and maps merge key-wise, slices concatenate (base first) and
// non-zero scalars of overlay replace those of base. A zero string or number
// in overlay is treated as absent. The toggles of an overlay dev server
// (hot, contentBase, compress, open, overlay, quiet, watchOptions) always
// replace the base's, so a disabled value takes effect.
func Merge(base, overlay *Config) (*Config, error) {
	merged := base.Clone()
	if overlay == nil {
		return merged, nil
	}

	if err := mergo.Merge(merged, overlay.Clone(), mergo.WithOverride, mergo.WithAppendSlice); err != nil {
		return nil, fmt.Errorf("error merging bundler configs: %w", err)
	}
	if overlay.DevServer != nil {
		merged.DevServer.setToggles(overlay.DevServer)
	}

	return merged, nil
}

// setToggles copies the boolean-like settings of src onto d. mergo skips
// them when they are false or disabled.
func (d *DevServer) setToggles(src *DevServer) {
	d.Hot = src.Hot
	d.ContentBase = src.ContentBase
	d.Compress = src.Compress
	d.Open = src.Open
	d.Overlay = src.Overlay
	d.Quiet = src.Quiet
	d.WatchOptions = src.WatchOptions
}

// Clone returns a deep copy of c. Plugin options are shared: descriptors
// are immutable once built. A nil receiver yields an empty Config.
func (c *Config) Clone() *Config {
	if c == nil {
		return &Config{}
	}

	out := &Config{
		Context: c.Context,
		Output:  c.Output,
		Resolve: Resolve{
			Extensions: slices.Clone(c.Resolve.Extensions),
			Alias:      maps.Clone(c.Resolve.Alias),
		},
		Node:    cloneAnyMap(c.Node),
		Devtool: c.Devtool,
		Plugins: slices.Clone(c.Plugins),
	}

	if c.Entry != nil {
		out.Entry = make(map[string][]string, len(c.Entry))
		for name, modules := range c.Entry {
			out.Entry[name] = slices.Clone(modules)
		}
	}

	if c.Module.Rules != nil {
		out.Module.Rules = make([]Rule, len(c.Module.Rules))
		for i, r := range c.Module.Rules {
			out.Module.Rules[i] = r.clone()
		}
	}

	if c.DevServer != nil {
		out.DevServer = c.DevServer.clone()
	}

	return out
}

func (r Rule) clone() Rule {
	out := r
	out.Options = cloneAnyMap(r.Options)
	out.Include = slices.Clone(r.Include)
	out.Exclude = slices.Clone(r.Exclude)
	if r.Use != nil {
		out.Use = make([]Loader, len(r.Use))
		for i, l := range r.Use {
			out.Use[i] = Loader{Loader: l.Loader, Options: cloneAnyMap(l.Options)}
		}
	}
	return out
}

func (d *DevServer) clone() *DevServer {
	out := *d
	if d.HistoryAPIFallback != nil {
		out.HistoryAPIFallback = &HistoryAPIFallback{
			Rewrites: slices.Clone(d.HistoryAPIFallback.Rewrites),
		}
	}
	if d.Proxy != nil {
		out.Proxy = make(map[string]ProxyRule, len(d.Proxy))
		for context, rule := range d.Proxy {
			rule.PathRewrite = maps.Clone(rule.PathRewrite)
			out.Proxy[context] = rule
		}
	}
	return &out
}

func cloneAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		switch value := v.(type) {
		case map[string]any:
			out[k] = cloneAnyMap(value)
		case []any:
			out[k] = slices.Clone(value)
		default:
			out[k] = v
		}
	}
	return out
}
