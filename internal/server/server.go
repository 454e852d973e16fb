package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-dev-server/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer creates the preview server for handler on addr (host:port).
func NewServer(handler http.Handler, addr string, logger *logger.Logger) (Server, error) {
	logger.Info().Str("addr", addr).Msg("creating new server...")

	if handler == nil {
		return nil, errNoHandler
	}
	if addr == "" {
		return nil, errEmptyAddress
	}

	return &server{
		httpServer: newHTTPServer(handler, addr, logger),
		logger:     logger,
	}, nil
}

func (s *server) Listen() error {
	return s.httpServer.listen()
}

func (s *server) Addr() string {
	return s.httpServer.addr()
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.Run(ctx)
}

func (s *server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	s.logger.Info().Str("addr", s.Addr()).Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		if err := <-serveErr; err != nil {
			return err
		}
		s.logger.Info().Msg("server Shutdown gracefully")
		return nil
	case err := <-serveErr:
		return err
	}
}

func (s *server) Shutdown() {
	s.httpServer.shutdown()
}
