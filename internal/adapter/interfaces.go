// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the running preview server over HTTP.
//
// The primary abstraction is [Prober], which waits until a served URL
// answers its health endpoint. The package ships a resty implementation
// ([NewHTTPProber]) that retries until the server is up or the readiness
// timeout expires.
//
// Non-2xx answers are mapped by mapHTTPError to the sentinel errors defined
// in errors.go so that callers can use [errors.Is].
package adapter

import "context"

// Prober checks the readiness of a served application.
type Prober interface {
	// WaitReady blocks until the server at baseURL answers its health
	// endpoint with 2xx, the retries are exhausted or ctx is done.
	WaitReady(ctx context.Context, baseURL string) error
}
