package lambda

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/regmock/internal/server"
)

// proxies translate the events of each proxy source into requests
// against the mock registry.
var proxies = map[ProxySource]func(http.Handler) any{
	ProxySourceApiGatewayV1: func(h http.Handler) any {
		return httpadapter.New(h).ProxyWithContext
	},
	ProxySourceApiGatewayV2: func(h http.Handler) any {
		return httpadapter.NewV2(h).ProxyWithContext
	},
	ProxySourceAlb: func(h http.Handler) any {
		return httpadapter.NewALB(h).ProxyWithContext
	},
}

type LambdaHandlerParams struct {
	fx.In

	Config Config

	// Handlers are the registry routes, usually the single catch-all
	// responder.
	Handlers []*server.HttpHandler `group:"handlers"`

	Context context.Context

	Logger *zap.Logger
}

// LambdaHandler answers proxied AWS Lambda events with the mock
// registry's responses.
type LambdaHandler struct {
	source  ProxySource
	handler http.Handler
	ctx     context.Context
	cancel  context.CancelFunc
	log     *zap.Logger
}

// NewLambdaHandler creates a handler serving the grouped registry routes.
// A lone catch-all responder is served without a mux, so event paths
// reach it exactly as API Gateway or the ALB forwarded them.
func NewLambdaHandler(params LambdaHandlerParams) *LambdaHandler {
	ctx, cancel := context.WithCancel(params.Context)

	log := params.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &LambdaHandler{
		source:  params.Config.ProxySource,
		handler: server.NewHandler(params.Handlers),
		ctx:     ctx,
		cancel:  cancel,
		log:     log,
	}
}

// NewLifecycleHandler creates a LambdaHandler bound to the fx lifecycle.
func NewLifecycleHandler(params LambdaHandlerParams, lc fx.Lifecycle) *LambdaHandler {
	handler := NewLambdaHandler(params)
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return handler.Start()
		},
		OnStop: func(context.Context) error {
			handler.Shutdown()
			return nil
		},
	})
	return handler
}

// Start runs the Lambda runtime client in the background. It fails if
// the proxy source is unknown.
func (s *LambdaHandler) Start() error {
	proxy, err := s.proxyFunction()
	if err != nil {
		return err
	}

	s.log.Info("serving mock registry to lambda events",
		zap.Stringer("proxy_source", s.source))

	go lambda.StartWithOptions(proxy, lambda.WithContext(s.ctx))

	return nil
}

func (s *LambdaHandler) Shutdown() {
	s.cancel()
}

func (s *LambdaHandler) proxyFunction() (any, error) {
	newProxy, ok := proxies[s.source]
	if !ok {
		return nil, fmt.Errorf("invalid proxy source: %q", s.source)
	}

	return newProxy(s.handler), nil
}
