// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver produces the development bundler configuration.
//
// A [Resolver] deep-merges the base configuration with the development
// overlay (style rules, source-map mode, dev server descriptor), attaches
// the development plugins and discovers a free port asynchronously. The
// outcome is delivered through a [Deferred] that completes exactly once:
// with the final configuration and the updated environment snapshot, or
// with the port discovery error.
package resolver
