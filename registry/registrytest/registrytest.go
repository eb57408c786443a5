// Package registrytest starts the mock registry for use in Go tests.
package registrytest

import (
	"context"
	"errors"
	"net"
	"syscall"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/lambda-feedback/regmock/internal/server"
	"github.com/lambda-feedback/regmock/registry"
)

const readyTimeout = 2 * time.Second

// Server is a running mock registry.
type Server struct {
	srv *server.HttpServer
}

// Addr returns the host:port the server listens on.
func (s *Server) Addr() string {
	return s.srv.Addr()
}

// URL returns the base URL of the server, without a trailing slash.
func (s *Server) URL() string {
	return "http://" + s.srv.Addr()
}

type options struct {
	config registry.Config
	port   int
	log    *zap.Logger
}

type Option func(*options)

// WithContentType sets the Content-Type header sent with JSON responses.
func WithContentType(contentType string) Option {
	return func(o *options) {
		o.config.ContentType = contentType
	}
}

// WithPort binds the server to a fixed loopback port instead of a random one.
func WithPort(port int) Option {
	return func(o *options) {
		o.port = port
	}
}

// WithLogger sets the logger used by the server.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// StartServer starts the mock registry on a loopback port and waits until
// it accepts connections. The caller must invoke the returned stop function.
func StartServer(ctx context.Context, opts ...Option) (*Server, func(context.Context) error, error) {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	responder := registry.NewResponder(registry.ResponderParams{
		Config: o.config,
		Log:    o.log,
	})

	srv := server.New(context.Background(), server.HttpConfig{
		Host: "127.0.0.1",
		Port: o.port,
	}, responder, o.log)

	if err := srv.Start(ctx); err != nil {
		return nil, nil, err
	}

	if err := server.WaitReady(ctx, srv.Addr(), readyTimeout); err != nil {
		_ = srv.Shutdown(ctx)
		return nil, nil, err
	}

	return &Server{srv: srv}, srv.Shutdown, nil
}

// StartTestServer starts the mock registry and stops it when the test ends.
func StartTestServer(t testing.TB, opts ...Option) *Server {
	t.Helper()

	srv, stop, err := StartServer(context.Background(), opts...)
	if err != nil {
		var opErr *net.OpError
		if errors.As(err, &opErr) && errors.Is(opErr.Err, syscall.EPERM) {
			t.Skipf("skipping mock registry: %v", err)
		}
		t.Fatalf("start mock registry: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := stop(ctx); err != nil {
			t.Errorf("stop mock registry: %v", err)
		}
	})

	return srv
}
