package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"slices"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-dev-server/internal/bundle"
)

// configBuilder collects configuration layers in ascending priority.
type configBuilder struct {
	configs []*StructuredConfig
	// fileLayer is the index the JSON layer is inserted at: above the
	// defaults, below environment and flags.
	fileLayer int
	err       error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride, mergo.WithTransformers(optionalTransformer{})); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, Defaults())
	b.fileLayer = len(b.configs)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	// env allocates nil struct pointers while walking the tree; an unset
	// DEV_POLL must not override lower layers.
	if _, ok := os.LookupEnv("DEV_POLL"); !ok {
		envCfg.Dev.Poll = nil
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := ParseFlags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = slices.Insert(b.configs, min(b.fileLayer, len(b.configs)), jsonCfg)

	return b
}

// optionalTransformer makes a set optional value replace the destination as
// a whole, so an explicit false or a disabled poll overrides a default.
type optionalTransformer struct{}

var (
	boolPtrType = reflect.TypeFor[*bool]()
	pollPtrType = reflect.TypeFor[*bundle.Poll]()
)

func (optionalTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != boolPtrType && typ != pollPtrType {
		return nil
	}

	return func(dst, src reflect.Value) error {
		if dst.CanSet() && !src.IsNil() {
			dst.Set(src)
		}
		return nil
	}
}
