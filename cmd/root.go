package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/regmock/config"
	"github.com/lambda-feedback/regmock/internal/shell"
	"github.com/lambda-feedback/regmock/util/conf"
	"github.com/lambda-feedback/regmock/util/logging"
)

const envPrefix = "REGMOCK_"

var (
	appName  = "regmock"
	appUsage = `A mock package registry API for integration tests, answering
a fixed set of scope and publish status routes with canned
JSON responses.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.PathFlag{
				Name:    "config",
				Usage:   "load configuration from a .json or .env file.",
				Aliases: []string{"f"},
				EnvVars: []string{envPrefix + "CONFIG"},
			},
		},
		Before: func(ctx *cli.Context) error {
			// create the bootstrap logger
			log, err := logging.NewLogger(
				ctx.String("log-level"),
				ctx.String("log-format"),
				map[string]any{"app": appName},
			)
			if err != nil {
				return err
			}

			// parse global config
			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli:       ctx,
				Defaults:  config.DefaultConfig,
				EnvPrefix: envPrefix,
				FileName:  ctx.Path("config"),
				Log:       log,
			})
			if err != nil {
				return err
			}

			// the config file may override the log settings
			log, err = logging.NewLogger(cfg.LogLevel, cfg.LogFormat, map[string]any{"app": appName})
			if err != nil {
				return err
			}

			// inject logger into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)

			// inject the config into the cli context
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			// no logger if Before failed early
			log, err := logging.LoggerFromContext(ctx.Context)
			if err != nil {
				return nil
			}

			_ = log.Sync()

			return nil
		},
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time

	// OnExit is called before the process exits.
	OnExit func()
}

func Execute(params ExecuteParams) {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	code := run(context.Background(), os.Args)

	if params.OnExit != nil {
		params.OnExit()
	}

	os.Exit(code)
}

func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)

	// if app exited without error, return
	if err == nil {
		return 0
	}

	if !shell.IsExitError(err) {
		fmt.Fprintf(os.Stderr, "exit error: %s\n", err.Error())
	}

	// exit with the code of an ExitError, 1 otherwise
	return shell.ExitCode(err)
}

// parseCommandConfig parses the config of a sub command, layering
// defaults, the config file, env vars and the command's flags.
func parseCommandConfig[C any](ctx *cli.Context, defaults conf.DefaultConfig) (C, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		var c C
		return c, err
	}

	return conf.Parse[C](conf.ParseOptions{
		Cli:       ctx,
		Defaults:  defaults,
		EnvPrefix: envPrefix,
		FileName:  ctx.Path("config"),
		Log:       log,
	})
}
