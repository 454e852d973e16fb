// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/rs/zerolog"

// AppBuildInfo carries immutable build-time metadata embedded into the
// devserver binary.
//
// Values are injected by linker flags (-X main.buildVersion=...) and shown
// on startup for diagnostics and release traceability.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// MarshalZerologObject lets the build info be logged with Event.Object.
// Unset values are omitted.
func (a AppBuildInfo) MarshalZerologObject(e *zerolog.Event) {
	if a.buildVersion != "" {
		e.Str("version", a.buildVersion)
	}
	if a.buildDate != "" {
		e.Str("date", a.buildDate)
	}
	if a.buildCommit != "" {
		e.Str("commit", a.buildCommit)
	}
}
