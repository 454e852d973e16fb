// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

// Plugin names as the bundler-invocation collaborator knows them.
const (
	PluginDefine                = "DefinePlugin"
	PluginHotModuleReplacement  = "HotModuleReplacementPlugin"
	PluginNamedModules          = "NamedModulesPlugin"
	PluginNoEmitOnErrors        = "NoEmitOnErrorsPlugin"
	PluginHTML                  = "HtmlWebpackPlugin"
	PluginCopy                  = "CopyWebpackPlugin"
	PluginFriendlyErrors        = "FriendlyErrorsPlugin"
	processEnvKey               = "process.env"
	defaultHTMLTemplateFilename = "index.html"
)

// Plugin is an opaque plugin descriptor. Options is owned by the plugin and
// is treated as immutable once the descriptor is built.
type Plugin struct {
	Name    string `json:"name" yaml:"name"`
	Options any    `json:"options,omitempty" yaml:"options,omitempty"`
}

// DefinePlugin injects compile-time constants; env becomes process.env.
func DefinePlugin(env map[string]string) Plugin {
	return Plugin{
		Name:    PluginDefine,
		Options: map[string]any{processEnvKey: env},
	}
}

// HotModuleReplacementPlugin enables hot module replacement.
func HotModuleReplacementPlugin() Plugin {
	return Plugin{Name: PluginHotModuleReplacement}
}

// NamedModulesPlugin makes hot updates report readable module names.
func NamedModulesPlugin() Plugin {
	return Plugin{Name: PluginNamedModules}
}

// NoEmitOnErrorsPlugin keeps compiling on errors and reports them instead of
// emitting broken assets.
func NoEmitOnErrorsPlugin() Plugin {
	return Plugin{Name: PluginNoEmitOnErrors}
}

// HTMLOptions configures HTML generation.
type HTMLOptions struct {
	Filename string `json:"filename" yaml:"filename"`
	Template string `json:"template" yaml:"template"`
	Inject   bool   `json:"inject" yaml:"inject"`
}

// HTMLPlugin generates Filename from Template and injects the bundles.
func HTMLPlugin(template string) Plugin {
	if template == "" {
		template = defaultHTMLTemplateFilename
	}
	return Plugin{
		Name: PluginHTML,
		Options: HTMLOptions{
			Filename: defaultHTMLTemplateFilename,
			Template: template,
			Inject:   true,
		},
	}
}

// CopyPattern copies the files under From to To, skipping Ignore globs.
type CopyPattern struct {
	From   string   `json:"from" yaml:"from"`
	To     string   `json:"to" yaml:"to"`
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`
}

// DotfilesIgnore matches every file whose name starts with a dot.
const DotfilesIgnore = ".*"

// CopyPlugin copies static assets from dir to the assets sub-directory,
// skipping dotfiles.
func CopyPlugin(from, to string) Plugin {
	return Plugin{
		Name: PluginCopy,
		Options: []CopyPattern{{
			From:   from,
			To:     to,
			Ignore: []string{DotfilesIgnore},
		}},
	}
}

// Severity of a compilation problem reported to an ErrorCallback.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// CompileError is a compilation problem as reported by the bundler.
type CompileError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
}

// ErrorCallback receives compilation problems of one severity.
type ErrorCallback func(severity Severity, errs []CompileError)

// CompilationSuccessInfo is printed by the error formatter after a
// successful build.
type CompilationSuccessInfo struct {
	Messages []string `json:"messages,omitempty" yaml:"messages,omitempty"`
	Notes    []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// FriendlyErrorsOptions configures the notification descriptor.
// OnErrors is an in-process hook and is never serialised; NotifyOnErrors
// records whether one is wired.
type FriendlyErrorsOptions struct {
	CompilationSuccessInfo CompilationSuccessInfo `json:"compilationSuccessInfo" yaml:"compilationSuccessInfo"`
	NotifyOnErrors         bool                   `json:"notifyOnErrors" yaml:"notifyOnErrors"`
	OnErrors               ErrorCallback          `json:"-" yaml:"-"`
}

// FriendlyErrorsPlugin reports url as the place the application runs and
// forwards compilation errors to onErrors when it is non-nil.
func FriendlyErrorsPlugin(url string, onErrors ErrorCallback) Plugin {
	return Plugin{
		Name: PluginFriendlyErrors,
		Options: FriendlyErrorsOptions{
			CompilationSuccessInfo: CompilationSuccessInfo{
				Messages: []string{"Your application is running here: " + url},
			},
			NotifyOnErrors: onErrors != nil,
			OnErrors:       onErrors,
		},
	}
}

// PluginNames lists the names of the configured plugins in order.
func (c *Config) PluginNames() []string {
	names := make([]string, 0, len(c.Plugins))
	for _, p := range c.Plugins {
		names = append(names, p.Name)
	}
	return names
}

// FindPlugin returns the first plugin named name.
func (c *Config) FindPlugin(name string) (Plugin, bool) {
	for _, p := range c.Plugins {
		if p.Name == name {
			return p, true
		}
	}
	return Plugin{}, false
}
