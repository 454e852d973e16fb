// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package portfinder

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-dev-server/internal/logger"
)

const (
	// DefaultHighestPort is the last candidate ever probed.
	DefaultHighestPort = 65535
	// DefaultMaxAttempts bounds the number of candidates probed per scan.
	DefaultMaxAttempts = 100
)

// Options configures a [Finder]. Zero values select the defaults.
type Options struct {
	// Host is the interface candidates are probed on ("" means all).
	Host string
	// HighestPort is the highest candidate probed.
	HighestPort int
	// MaxAttempts is the maximum number of candidates probed.
	MaxAttempts int
}

// Result is the outcome of one discovery: exactly one of Port and Err is set.
type Result struct {
	Port int
	Err  error
}

// Finder scans for a free TCP port.
type Finder struct {
	host        string
	highestPort int
	maxAttempts int

	prober Prober
	logger *logger.Logger
}

// NewFinder returns a Finder probing through prober. A nil prober selects
// [ListenProber].
func NewFinder(opts Options, prober Prober, logger *logger.Logger) *Finder {
	if opts.HighestPort <= 0 || opts.HighestPort > DefaultHighestPort {
		opts.HighestPort = DefaultHighestPort
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultMaxAttempts
	}
	if prober == nil {
		prober = NewListenProber()
	}

	return &Finder{
		host:        opts.Host,
		highestPort: opts.HighestPort,
		maxAttempts: opts.MaxAttempts,
		prober:      prober,
		logger:      logger,
	}
}

// GetPort returns the first free port at or above start.
//
// Errors are always *DiscoveryError.
func (f *Finder) GetPort(ctx context.Context, start int) (int, error) {
	if start < 1 || start > f.highestPort {
		return 0, &DiscoveryError{Host: f.host, Start: start, Last: start, Err: ErrInvalidStartPort}
	}

	last := start
	for attempt := 0; attempt < f.maxAttempts; attempt++ {
		port := start + attempt
		if port > f.highestPort {
			break
		}
		if err := ctx.Err(); err != nil {
			return 0, &DiscoveryError{Host: f.host, Start: start, Last: last, Err: err}
		}

		last = port
		err := f.prober.Probe(ctx, f.host, port)
		switch {
		case err == nil:
			f.logger.Debug().Int("port", port).Int("attempts", attempt+1).Msg("found free port")
			return port, nil
		case errors.Is(err, ErrPortInUse):
			f.logger.Debug().Int("port", port).Msg("port is busy, trying next one")
		default:
			return 0, &DiscoveryError{Host: f.host, Start: start, Last: last, Err: err}
		}
	}

	return 0, &DiscoveryError{Host: f.host, Start: start, Last: last, Err: ErrNoAvailablePort}
}

// GetPortAsync runs GetPort in a goroutine. The returned channel yields
// exactly one Result and is then closed.
func (f *Finder) GetPortAsync(ctx context.Context, start int) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		port, err := f.GetPort(ctx, start)
		out <- Result{Port: port, Err: err}
	}()
	return out
}
