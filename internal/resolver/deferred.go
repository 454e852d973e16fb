// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-dev-server/internal/bundle"
	"github.com/MKhiriev/go-dev-server/internal/config"
)

// Result is a successful resolution.
type Result struct {
	// Config is the final bundler configuration.
	Config *bundle.Config
	// Env is the environment snapshot with PORT set to the discovered port.
	Env config.Environment
}

// Deferred is a single-shot container for the outcome of a resolution.
type Deferred struct {
	once sync.Once
	done chan struct{}

	result Result
	err    error
}

func newDeferred() *Deferred {
	return &Deferred{done: make(chan struct{})}
}

// complete stores the outcome and releases the waiters. Only the first call
// has an effect; it reports whether this call completed d.
func (d *Deferred) complete(result Result, err error) bool {
	completed := false
	d.once.Do(func() {
		d.result = result
		d.err = err
		completed = true
		close(d.done)
	})
	return completed
}

// Done is closed once d is completed.
func (d *Deferred) Done() <-chan struct{} {
	return d.done
}

// Wait blocks until d is completed or ctx is done.
//
// On failure the returned Result carries only the unmodified environment
// snapshot.
func (d *Deferred) Wait(ctx context.Context) (Result, error) {
	select {
	case <-d.done:
		return d.result, d.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
