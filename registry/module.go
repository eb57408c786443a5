package registry

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/regmock/internal/server"
	"github.com/lambda-feedback/regmock/util/logging"
)

// Module provides the responder and mounts it as the catch-all handler.
func Module(config Config) fx.Option {
	return fx.Module(
		"registry",
		// rename logger for module
		logging.DecorateLogger("registry"),
		// provide responder config
		fx.Supply(config),
		// provide responder
		fx.Provide(NewResponder),
		// mount responder
		fx.Provide(NewRoute),
	)
}

// NewRoute mounts the responder as the catch-all handler.
func NewRoute(responder *Responder) server.HttpHandlerResult {
	return server.AsHttpHandler("/", responder)
}
