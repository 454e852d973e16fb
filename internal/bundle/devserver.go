// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DevServer describes the development HTTP server the bundler starts.
type DevServer struct {
	ClientLogLevel     string               `json:"clientLogLevel,omitempty" yaml:"clientLogLevel,omitempty"`
	HistoryAPIFallback *HistoryAPIFallback  `json:"historyApiFallback,omitempty" yaml:"historyApiFallback,omitempty"`
	Hot                bool                 `json:"hot" yaml:"hot"`
	ContentBase        bool                 `json:"contentBase" yaml:"contentBase"`
	Compress           bool                 `json:"compress" yaml:"compress"`
	Host               string               `json:"host" yaml:"host"`
	Port               int                  `json:"port" yaml:"port"`
	Open               bool                 `json:"open" yaml:"open"`
	Overlay            Overlay              `json:"overlay" yaml:"overlay"`
	PublicPath         string               `json:"publicPath,omitempty" yaml:"publicPath,omitempty"`
	Proxy              map[string]ProxyRule `json:"proxy,omitempty" yaml:"proxy,omitempty"`
	Quiet              bool                 `json:"quiet" yaml:"quiet"`
	WatchOptions       WatchOptions         `json:"watchOptions" yaml:"watchOptions"`
}

// URL returns the address the dev server is reachable on.
func (d *DevServer) URL() string {
	return fmt.Sprintf("http://%s:%d", d.Host, d.Port)
}

// HistoryAPIFallback rewrites unmatched navigation requests, so client-side
// routes resolve to the application's index page.
type HistoryAPIFallback struct {
	Rewrites []Rewrite `json:"rewrites,omitempty" yaml:"rewrites,omitempty"`
}

// Rewrite maps request paths matching From (a regular expression source) to To.
type Rewrite struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// ProxyRule forwards requests under a context path to Target.
type ProxyRule struct {
	Target       string            `json:"target" yaml:"target"`
	ChangeOrigin bool              `json:"changeOrigin,omitempty" yaml:"changeOrigin,omitempty"`
	PathRewrite  map[string]string `json:"pathRewrite,omitempty" yaml:"pathRewrite,omitempty"`
	WS           bool              `json:"ws,omitempty" yaml:"ws,omitempty"`
}

// WatchOptions tunes the bundler's file watcher.
type WatchOptions struct {
	Poll Poll `json:"poll" yaml:"poll"`
}

// Overlay is the in-browser error overlay setting. It serialises to false
// when disabled and to {"warnings":..,"errors":..} otherwise.
type Overlay struct {
	Enabled  bool
	Warnings bool
	Errors   bool
}

type overlayJSON struct {
	Warnings bool `json:"warnings" yaml:"warnings"`
	Errors   bool `json:"errors" yaml:"errors"`
}

// ErrorsOnlyOverlay shows compile errors but not warnings.
func ErrorsOnlyOverlay() Overlay {
	return Overlay{Enabled: true, Errors: true}
}

func (o Overlay) MarshalJSON() ([]byte, error) {
	if !o.Enabled {
		return []byte("false"), nil
	}
	return json.Marshal(overlayJSON{Warnings: o.Warnings, Errors: o.Errors})
}

func (o *Overlay) UnmarshalJSON(b []byte) error {
	var enabled bool
	if err := json.Unmarshal(b, &enabled); err == nil {
		*o = Overlay{Enabled: enabled, Errors: enabled}
		return nil
	}

	var v overlayJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("overlay must be a boolean or an object: %w", err)
	}
	*o = Overlay{Enabled: true, Warnings: v.Warnings, Errors: v.Errors}
	return nil
}

func (o Overlay) MarshalYAML() (any, error) {
	if !o.Enabled {
		return false, nil
	}
	return overlayJSON{Warnings: o.Warnings, Errors: o.Errors}, nil
}

func (o *Overlay) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var enabled bool
		if err := value.Decode(&enabled); err != nil {
			return fmt.Errorf("overlay must be a boolean or a mapping: %w", err)
		}
		*o = Overlay{Enabled: enabled, Errors: enabled}
		return nil
	}

	var v overlayJSON
	if err := value.Decode(&v); err != nil {
		return fmt.Errorf("overlay must be a boolean or a mapping: %w", err)
	}
	*o = Overlay{Enabled: true, Warnings: v.Warnings, Errors: v.Errors}
	return nil
}

// Poll is the watcher polling setting: disabled, enabled with the
// watcher's default interval, or enabled with an interval in milliseconds.
// It serialises to false, true or the interval.
type Poll struct {
	Enabled  bool
	Interval int
}

// String implements flag.Value.
func (p *Poll) String() string {
	switch {
	case p == nil || !p.Enabled:
		return "false"
	case p.Interval > 0:
		return strconv.Itoa(p.Interval)
	default:
		return "true"
	}
}

// Set implements flag.Value. It accepts "true", "false" or an interval in
// milliseconds.
func (p *Poll) Set(s string) error {
	s = strings.TrimSpace(s)
	if b, err := strconv.ParseBool(s); err == nil {
		*p = Poll{Enabled: b}
		return nil
	}

	ms, err := strconv.Atoi(s)
	if err != nil || ms < 0 {
		return fmt.Errorf("poll must be a boolean or a non-negative interval in milliseconds, got %q", s)
	}
	*p = Poll{Enabled: ms > 0, Interval: ms}
	return nil
}

// UnmarshalText lets caarlos0/env decode Poll from an environment variable.
func (p *Poll) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

func (p Poll) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Poll) UnmarshalJSON(b []byte) error {
	return p.Set(strings.Trim(string(b), `"`))
}

func (p Poll) MarshalYAML() (any, error) {
	if p.Enabled && p.Interval > 0 {
		return p.Interval, nil
	}
	return p.Enabled, nil
}

func (p *Poll) UnmarshalYAML(value *yaml.Node) error {
	return p.Set(value.Value)
}
