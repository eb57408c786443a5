package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/regmock/app"
	"github.com/lambda-feedback/regmock/app/standalone"
	"github.com/lambda-feedback/regmock/util/logging"
)

var (
	serveCmdDescription = `The serve command starts the mock registry http server. It
answers the scope, scopes and publish status routes with
canned JSON responses and every other path with 404.

The command will launch the http server and blocks indefin-
itely, until the process is interrupted.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start the mock registry http server.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on.",
				Value:    "127.0.0.1",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    8080,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
			&cli.BoolFlag{
				Name:     "metrics",
				Usage:    "Serve prometheus metrics on a separate listener.",
				Category: "metrics",
				EnvVars:  []string{"METRICS_ENABLED"},
			},
			&cli.StringFlag{
				Name:     "metrics-host",
				Usage:    "The host the metrics listener binds to.",
				Value:    "127.0.0.1",
				Category: "metrics",
				EnvVars:  []string{"METRICS_HOST"},
			},
			&cli.IntFlag{
				Name:     "metrics-port",
				Usage:    "The port the metrics listener binds to.",
				Value:    9090,
				Category: "metrics",
				EnvVars:  []string{"METRICS_PORT"},
			},
		}, registryFlags...),
	}
)

// registryFlags configure the responses of the mock registry.
var registryFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "content-type",
		Usage:    "The Content-Type header of JSON responses. Omitted if empty.",
		Category: "registry",
		EnvVars:  []string{"REGISTRY_CONTENT_TYPE"},
	},
}

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := parseCommandConfig[standalone.Config](ctx, standalone.DefaultConfig)
	if err != nil {
		return err
	}

	log.Info("starting mock registry")

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
