package standalone

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/regmock/internal/metrics"
	"github.com/lambda-feedback/regmock/internal/server"
	"github.com/lambda-feedback/regmock/registry"
	"github.com/lambda-feedback/regmock/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide request metrics
		metrics.Module(config.Metrics),
		// provide registry handlers
		registry.Module(config.Registry),
		// provide server
		server.Module(config.HttpConfig),
	)
}
