package server

import "go.uber.org/fx"

// Module serves every handler of the "handlers" group on the
// configured address for the lifetime of the fx application.
func Module(config HttpConfig) fx.Option {
	return fx.Module("server",
		// provide config
		fx.Supply(config),
		// provide server
		fx.Provide(NewLifecycleServer),
		// invoke server
		fx.Invoke(func(*HttpServer) {}),
	)
}
