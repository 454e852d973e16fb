// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package portfinder

import (
	"errors"
	"fmt"
)

// ErrNoAvailablePort is returned when every probed candidate is occupied.
var ErrNoAvailablePort = errors.New("no available port")

// ErrInvalidStartPort is returned when the start port is outside 1..HighestPort.
var ErrInvalidStartPort = errors.New("invalid start port")

// DiscoveryError reports a failed port discovery. Err is
// [ErrNoAvailablePort], [ErrInvalidStartPort], a context error or the socket
// error that aborted the scan.
type DiscoveryError struct {
	Host  string
	Start int
	Last  int
	Err   error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("port discovery on %q from %d to %d failed: %v", e.Host, e.Start, e.Last, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}
