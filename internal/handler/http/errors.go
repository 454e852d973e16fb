// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors returned by [Handler.Init] when the dev server descriptor
// cannot be turned into routes. Callers can match against them with
// [errors.Is].
var (
	// ErrNoDevServer is returned when the configuration has no dev server
	// descriptor.
	ErrNoDevServer = errors.New("no dev server descriptor")

	// ErrInvalidProxyTarget is returned when a proxy rule's target is not an
	// absolute URL.
	ErrInvalidProxyTarget = errors.New("invalid proxy target")

	// ErrInvalidRewrite is returned when a history fallback rewrite or a
	// proxy path rewrite is not a valid regular expression.
	ErrInvalidRewrite = errors.New("invalid rewrite pattern")

	// ErrIgnoredFile is returned when a requested static file matches an
	// ignore glob.
	ErrIgnoredFile = errors.New("file is ignored")
)
