// Package server runs the preview HTTP server.
//
// It owns the server lifecycle: binding the listener, serving in a
// background goroutine, signal handling and graceful shutdown.
package server
