// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

// Config is the bundler configuration handed to the bundler-invocation
// collaborator. JSON and YAML keys follow the bundler's own option names.
type Config struct {
	Context   string              `json:"context,omitempty" yaml:"context,omitempty"`
	Entry     map[string][]string `json:"entry,omitempty" yaml:"entry,omitempty"`
	Output    Output              `json:"output" yaml:"output"`
	Resolve   Resolve             `json:"resolve" yaml:"resolve"`
	Module    Module              `json:"module" yaml:"module"`
	Node      map[string]any      `json:"node,omitempty" yaml:"node,omitempty"`
	Devtool   string              `json:"devtool,omitempty" yaml:"devtool,omitempty"`
	DevServer *DevServer          `json:"devServer,omitempty" yaml:"devServer,omitempty"`
	Plugins   []Plugin            `json:"plugins,omitempty" yaml:"plugins,omitempty"`
}

// Output controls where and how the bundler emits assets.
type Output struct {
	Path       string `json:"path,omitempty" yaml:"path,omitempty"`
	Filename   string `json:"filename,omitempty" yaml:"filename,omitempty"`
	PublicPath string `json:"publicPath,omitempty" yaml:"publicPath,omitempty"`
}

// Resolve controls module resolution.
type Resolve struct {
	Extensions []string          `json:"extensions,omitempty" yaml:"extensions,omitempty"`
	Alias      map[string]string `json:"alias,omitempty" yaml:"alias,omitempty"`
}

// Module holds the ordered loader rules.
type Module struct {
	Rules []Rule `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// Rule matches modules by Test (a regular expression source) and runs them
// through a loader chain. Loader/Options is the single-loader shorthand; Use
// is the explicit chain, applied right to left by the bundler.
type Rule struct {
	Test    string         `json:"test" yaml:"test"`
	Loader  string         `json:"loader,omitempty" yaml:"loader,omitempty"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
	Use     []Loader       `json:"use,omitempty" yaml:"use,omitempty"`
	Include []string       `json:"include,omitempty" yaml:"include,omitempty"`
	Exclude []string       `json:"exclude,omitempty" yaml:"exclude,omitempty"`
}

// Loader is one element of a rule's loader chain.
type Loader struct {
	Loader  string         `json:"loader" yaml:"loader"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
}

// LoaderNames returns the loader names of the rule's chain in order.
func (r Rule) LoaderNames() []string {
	if len(r.Use) == 0 && r.Loader != "" {
		return []string{r.Loader}
	}

	names := make([]string, 0, len(r.Use))
	for _, l := range r.Use {
		names = append(names, l.Loader)
	}
	return names
}
