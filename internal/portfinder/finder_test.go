// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package portfinder_test

import (
	"context"
	"errors"
	"net"
	"syscall"
	"testing"

	"github.com/MKhiriev/go-dev-server/internal/logger"
	"github.com/MKhiriev/go-dev-server/internal/mock"
	"github.com/MKhiriev/go-dev-server/internal/portfinder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestFinder(t *testing.T, opts portfinder.Options) (*portfinder.Finder, *mock.MockProber) {
	t.Helper()
	ctrl := gomock.NewController(t)
	prober := mock.NewMockProber(ctrl)
	return portfinder.NewFinder(opts, prober, logger.Nop()), prober
}

// ── GetPort ──────────────────────────────────────────────────────────────────

func TestGetPort_StartIsFree(t *testing.T) {
	f, prober := newTestFinder(t, portfinder.Options{Host: "localhost"})
	ctx := context.Background()

	prober.EXPECT().Probe(ctx, "localhost", 8080).Return(nil)

	port, err := f.GetPort(ctx, 8080)
	require.NoError(t, err)
	assert.Equal(t, 8080, port)
}

func TestGetPort_StartBusyNextFree(t *testing.T) {
	f, prober := newTestFinder(t, portfinder.Options{Host: "localhost"})
	ctx := context.Background()

	gomock.InOrder(
		prober.EXPECT().Probe(ctx, "localhost", 9000).Return(portfinder.ErrPortInUse),
		prober.EXPECT().Probe(ctx, "localhost", 9001).Return(nil),
	)

	port, err := f.GetPort(ctx, 9000)
	require.NoError(t, err)
	assert.Equal(t, 9001, port)
}

func TestGetPort_AllAttemptsBusy(t *testing.T) {
	f, prober := newTestFinder(t, portfinder.Options{MaxAttempts: 3})
	ctx := context.Background()

	prober.EXPECT().Probe(ctx, "", gomock.Any()).Return(portfinder.ErrPortInUse).Times(3)

	port, err := f.GetPort(ctx, 8080)
	assert.Zero(t, port)
	require.ErrorIs(t, err, portfinder.ErrNoAvailablePort)

	var derr *portfinder.DiscoveryError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 8080, derr.Start)
	assert.Equal(t, 8082, derr.Last)
}

func TestGetPort_StopsAtHighestPort(t *testing.T) {
	f, prober := newTestFinder(t, portfinder.Options{HighestPort: 8081, MaxAttempts: 50})
	ctx := context.Background()

	prober.EXPECT().Probe(ctx, "", 8080).Return(portfinder.ErrPortInUse)
	prober.EXPECT().Probe(ctx, "", 8081).Return(portfinder.ErrPortInUse)

	_, err := f.GetPort(ctx, 8080)
	require.ErrorIs(t, err, portfinder.ErrNoAvailablePort)
}

func TestGetPort_OtherSocketErrorAborts(t *testing.T) {
	f, prober := newTestFinder(t, portfinder.Options{Host: "no-such-host.invalid"})
	ctx := context.Background()
	dnsErr := errors.New("lookup no-such-host.invalid: no such host")

	prober.EXPECT().Probe(ctx, "no-such-host.invalid", 8080).Return(dnsErr)

	_, err := f.GetPort(ctx, 8080)
	require.ErrorIs(t, err, dnsErr)
	assert.NotErrorIs(t, err, portfinder.ErrNoAvailablePort)
}

func TestGetPort_InvalidStart(t *testing.T) {
	tests := []struct {
		name  string
		start int
	}{
		{name: "zero", start: 0},
		{name: "negative", start: -1},
		{name: "above highest", start: 70000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, _ := newTestFinder(t, portfinder.Options{})

			_, err := f.GetPort(context.Background(), tt.start)
			assert.ErrorIs(t, err, portfinder.ErrInvalidStartPort)
		})
	}
}

func TestGetPort_CancelledContext(t *testing.T) {
	f, _ := newTestFinder(t, portfinder.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.GetPort(ctx, 8080)
	require.ErrorIs(t, err, context.Canceled)
}

// ── GetPortAsync ─────────────────────────────────────────────────────────────

func TestGetPortAsync_DeliversExactlyOneResult(t *testing.T) {
	f, prober := newTestFinder(t, portfinder.Options{})
	prober.EXPECT().Probe(gomock.Any(), "", 8080).Return(nil)

	results := f.GetPortAsync(context.Background(), 8080)

	res, ok := <-results
	require.True(t, ok)
	assert.Equal(t, portfinder.Result{Port: 8080}, res)

	_, ok = <-results
	assert.False(t, ok, "channel must be closed after the single result")
}

func TestGetPortAsync_Failure(t *testing.T) {
	f, prober := newTestFinder(t, portfinder.Options{MaxAttempts: 1})
	prober.EXPECT().Probe(gomock.Any(), "", 8080).Return(portfinder.ErrPortInUse)

	res := <-f.GetPortAsync(context.Background(), 8080)
	assert.Zero(t, res.Port)
	assert.ErrorIs(t, res.Err, portfinder.ErrNoAvailablePort)
}

// ── ListenProber ─────────────────────────────────────────────────────────────

func TestListenProber_DetectsBusyPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	busy := ln.Addr().(*net.TCPAddr).Port

	err = portfinder.NewListenProber().Probe(context.Background(), "127.0.0.1", busy)
	require.ErrorIs(t, err, portfinder.ErrPortInUse)
	assert.ErrorIs(t, err, syscall.EADDRINUSE)
}

func TestListenProber_FreePortIsReleased(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	free := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	p := portfinder.NewListenProber()
	require.NoError(t, p.Probe(context.Background(), "127.0.0.1", free))
	// the probe closed its listener, so the port can be bound again
	require.NoError(t, p.Probe(context.Background(), "127.0.0.1", free))
}

func TestFinder_SkipsRealBusyPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	busy := ln.Addr().(*net.TCPAddr).Port

	f := portfinder.NewFinder(portfinder.Options{Host: "127.0.0.1", MaxAttempts: 20}, nil, logger.Nop())
	port, err := f.GetPort(context.Background(), busy)
	require.NoError(t, err)
	assert.Greater(t, port, busy)
}
