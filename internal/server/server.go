package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

var ErrServerStarted = errors.New("server already started")

type HttpServerParams struct {
	fx.In

	Context context.Context

	Config HttpConfig

	Handlers []*HttpHandler `group:"handlers"`
	Logger   *zap.Logger
}

type HttpServer struct {
	ctx      context.Context
	addr     string
	server   *http.Server
	listener net.Listener
	log      *zap.Logger

	mu   sync.Mutex
	done chan struct{}
}

// New creates a server for the given handler. Panics raised while handling
// a request are reported to sentry and abort that request's connection only.
func New(ctx context.Context, config HttpConfig, handler http.Handler, log *zap.Logger) *HttpServer {
	if log == nil {
		log = zap.NewNop()
	}

	handler = sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle(handler)

	if config.H2c {
		handler = h2c.NewHandler(handler, &http2.Server{})
	}

	return &HttpServer{
		ctx:    ctx,
		addr:   config.Address(),
		server: &http.Server{Handler: handler},
		log:    log,
	}
}

// NewHttpServer creates a server which mounts all grouped handlers.
func NewHttpServer(params HttpServerParams) *HttpServer {
	return New(params.Context, params.Config, NewHandler(params.Handlers), params.Logger)
}

func NewLifecycleServer(params HttpServerParams, lc fx.Lifecycle) *HttpServer {
	server := NewHttpServer(params)
	lc.Append(fx.Hook{
		OnStart: server.Start,
		OnStop:  server.Shutdown,
	})
	return server
}

// Start binds the listener and serves requests in the background.
func (s *HttpServer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return ErrServerStarted
	}

	cfg := net.ListenConfig{}

	listener, err := cfg.Listen(ctx, "tcp", s.addr)
	if err != nil {
		s.log.With(zap.Error(err)).Error("failed to listen")
		return err
	}

	s.listener = listener
	s.done = make(chan struct{})

	if s.ctx != nil {
		s.server.BaseContext = func(net.Listener) context.Context {
			return s.ctx
		}
	}

	s.log.With(zap.String("address", listener.Addr().String())).Info("listening")

	go s.serve(listener, s.done)

	return nil
}

func (s *HttpServer) serve(listener net.Listener, done chan struct{}) {
	defer close(done)

	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.With(zap.Error(err)).Error("failed to serve")
	}
}

// Addr returns the address the server is listening on, or the configured
// address if it has not been started.
func (s *HttpServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return s.addr
	}

	return s.listener.Addr().String()
}

// Shutdown gracefully stops the server and waits for the serve loop to exit.
func (s *HttpServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return nil
	}

	if err := s.server.Shutdown(ctx); err != nil {
		s.log.With(zap.Error(err)).Error("failed to shutdown")
		return err
	}

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
