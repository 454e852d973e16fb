package bundle

import "maps"

// StyleOptions controls the generated style rules.
type StyleOptions struct {
	SourceMap  bool
	UsePostCSS bool
}

// styleExtensions is ordered: rules are emitted in this order.
var styleExtensions = []struct {
	ext     string
	loader  string
	options map[string]any
}{
	{ext: "css"},
	{ext: "postcss"},
	{ext: "less", loader: "less"},
	{ext: "sass", loader: "sass", options: map[string]any{"indentedSyntax": true}},
	{ext: "scss", loader: "sass"},
	{ext: "stylus", loader: "stylus"},
	{ext: "styl", loader: "stylus"},
}

// StyleLoaders returns one rule per style extension. Every chain starts
// with vue-style-loader and css-loader, optionally postcss-loader, and ends
// with the pre-processor loader of the extension.
func StyleLoaders(opts StyleOptions) []Rule {
	rules := make([]Rule, 0, len(styleExtensions))
	for _, s := range styleExtensions {
		rules = append(rules, Rule{
			Test: `\.` + s.ext + `$`,
			Use:  cssLoaders(opts, s.loader, s.options),
		})
	}
	return rules
}

func cssLoaders(opts StyleOptions, preprocessor string, preprocessorOptions map[string]any) []Loader {
	loaders := []Loader{
		{Loader: "vue-style-loader"},
		{Loader: "css-loader", Options: sourceMapOptions(opts.SourceMap, nil)},
	}
	if opts.UsePostCSS {
		loaders = append(loaders, Loader{Loader: "postcss-loader", Options: sourceMapOptions(opts.SourceMap, nil)})
	}
	if preprocessor != "" {
		loaders = append(loaders, Loader{
			Loader:  preprocessor + "-loader",
			Options: sourceMapOptions(opts.SourceMap, preprocessorOptions),
		})
	}
	return loaders
}

func sourceMapOptions(sourceMap bool, extra map[string]any) map[string]any {
	options := make(map[string]any, len(extra)+1)
	maps.Copy(options, extra)
	options["sourceMap"] = sourceMap
	return options
}
