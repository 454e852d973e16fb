package portfinder

import (
	"context"
	"errors"
	"net"
	"strconv"
	"syscall"
)

// Prober reports whether a TCP port can be bound on host.
//
//go:generate mockgen -source=probe.go -destination=../mock/prober_mock.go -package=mock
type Prober interface {
	// Probe returns nil when the port is free, an error wrapping
	// [ErrPortInUse] when it is occupied, and any other error when the
	// socket could not be opened for another reason.
	Probe(ctx context.Context, host string, port int) error
}

// ErrPortInUse marks a candidate that is already bound or not bindable by
// the current user.
var ErrPortInUse = errors.New("port in use")

// ListenProber probes by opening and immediately closing a TCP listener.
type ListenProber struct {
	lc net.ListenConfig
}

// NewListenProber returns the default [Prober].
func NewListenProber() *ListenProber {
	return &ListenProber{}
}

func (p *ListenProber) Probe(ctx context.Context, host string, port int) error {
	ln, err := p.lc.Listen(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) || errors.Is(err, syscall.EACCES) {
			return errors.Join(ErrPortInUse, err)
		}
		return err
	}
	return ln.Close()
}
