package lambda

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/regmock/registry"
	"github.com/lambda-feedback/regmock/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"lambda",
		// provide lambda config
		fx.Supply(config),
		// rename logger for module
		logging.DecorateLogger("lambda"),
		// provide registry handlers
		registry.Module(config.Registry),
		// provide handler
		fx.Provide(NewLifecycleHandler),
		// invoke handler
		fx.Invoke(func(*LambdaHandler) {}),
	)
}
