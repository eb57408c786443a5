package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/regmock/internal/server"
	"github.com/lambda-feedback/regmock/registry"
	"github.com/lambda-feedback/regmock/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"metrics",
		// rename logger for module
		logging.DecorateLogger("metrics"),
		// provide metrics config
		fx.Supply(config),
		// provide metrics
		fx.Provide(New),
		// observe registry responses
		fx.Provide(func(m *Metrics) registry.Observer { return m }),
		// serve metrics if enabled
		fx.Invoke(registerServer),
	)
}

type serverParams struct {
	fx.In

	Context context.Context
	Config  Config
	Metrics *Metrics
	Logger  *zap.Logger
}

func registerServer(params serverParams, lc fx.Lifecycle) {
	if !params.Config.Enabled {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", params.Metrics.Handler())

	srv := server.New(params.Context, server.HttpConfig{
		Host: params.Config.Host,
		Port: params.Config.Port,
	}, mux, params.Logger)

	lc.Append(fx.Hook{
		OnStart: srv.Start,
		OnStop:  srv.Shutdown,
	})
}
