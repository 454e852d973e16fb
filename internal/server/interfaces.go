package server

import "context"

// Server defines the lifecycle contract of the preview server.
//
// Implementations bind their listener in [Listen], block in [Run] or
// [RunServer] until shutdown is requested and release resources in
// [Shutdown].
type Server interface {
	// Listen binds the listen address. It is called by Run when the
	// listener is not bound yet.
	Listen() error

	// Addr returns the bound address, or the configured one before Listen.
	Addr() string

	// Run serves requests until ctx is done or serving fails.
	Run(ctx context.Context) error

	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
