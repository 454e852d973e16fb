// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/MKhiriev/go-dev-server/internal/bundle"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The HOST / PORT snapshot is not validated: a malformed value there falls
// back to the dev defaults instead of failing.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Dev.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDevConfigs, err)
	}

	if err := cfg.Build.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBuildConfigs, err)
	}

	if err := cfg.Finder.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFinderConfigs, err)
	}

	if err := cfg.Server.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	return nil
}

func (d *Dev) validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Host, validation.Required, is.Host),
		validation.Field(&d.Port, validation.Required, validation.Min(1), validation.Max(maxPort)),
		validation.Field(&d.Devtool, validation.Required),
		validation.Field(&d.AssetsPublicPath,
			validation.Required,
			validation.By(validatePublicPath),
		),
		validation.Field(&d.AssetsSubDirectory, validation.Required),
		validation.Field(&d.ProxyTable,
			validation.Each(validation.By(validateProxyRule)),
		),
	)
}

func (b *Build) validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.ProjectDir, validation.Required),
		validation.Field(&b.StaticDir, validation.Required),
		validation.Field(&b.IndexTemplate, validation.Required),
		validation.Field(&b.OutputPath, validation.Required),
		validation.Field(&b.ResolveTimeout,
			validation.Required,
			validation.Min(time.Duration(0)).Exclusive(),
		),
	)
}

func (f *Finder) validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.MaxAttempts, validation.Required, validation.Min(1)),
		validation.Field(&f.HighestPort, validation.Required, validation.Min(1), validation.Max(maxPort)),
	)
}

func (s *Server) validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.ServeDir, validation.When(s.Serve, validation.Required)),
		validation.Field(&s.ReadyTimeout,
			validation.When(s.Serve, validation.Required),
			validation.Min(time.Duration(0)),
		),
	)
}

func validatePublicPath(value interface{}) error {
	publicPath, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}

	if !strings.HasPrefix(publicPath, "/") {
		return validation.NewError("validation_invalid_public_path", "must start with /")
	}

	return nil
}

func validateProxyRule(value interface{}) error {
	rule, ok := value.(bundle.ProxyRule)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a ProxyRule")
	}

	if rule.Target == "" {
		return validation.NewError("validation_empty_url", "proxy target cannot be empty")
	}

	parsedURL, err := url.Parse(rule.Target)
	if err != nil {
		return validation.NewError("validation_invalid_url", "must be a valid URL")
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" && parsedURL.Scheme != "ws" && parsedURL.Scheme != "wss" {
		return validation.NewError("validation_invalid_scheme", "URL must use http, https, ws or wss scheme")
	}

	if parsedURL.Host == "" {
		return validation.NewError("validation_missing_host", "URL must have a host")
	}

	return nil
}
