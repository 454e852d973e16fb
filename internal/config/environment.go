package config

import (
	"strconv"
	"strings"
)

const maxPort = 65535

// Environment is the snapshot of the HOST and PORT variables taken at
// startup. It is never mutated: the resolver returns an updated copy.
type Environment struct {
	Host string `env:"HOST"`
	Port Port   `env:"PORT"`
}

// WithPort returns a copy of e with Port set to port.
func (e Environment) WithPort(port int) Environment {
	e.Port = Port(port)
	return e
}

// Port is a TCP port read from the environment. Anything that is not a
// number in 1..65535 decodes to zero, meaning "not set".
type Port int

// UnmarshalText implements encoding.TextUnmarshaler. It never fails.
func (p *Port) UnmarshalText(text []byte) error {
	*p = parsePort(string(text))
	return nil
}

// Int returns the port as an int.
func (p Port) Int() int {
	return int(p)
}

func parsePort(s string) Port {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > maxPort {
		return 0
	}
	return Port(n)
}

// HostOr returns HOST, or fallback when HOST is empty.
func (e Environment) HostOr(fallback string) string {
	if e.Host == "" {
		return fallback
	}
	return e.Host
}

// PortOr returns PORT, or fallback when PORT is not set.
func (e Environment) PortOr(fallback int) int {
	if e.Port == 0 {
		return fallback
	}
	return int(e.Port)
}
