package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lambda-feedback/regmock/internal/server"
	"github.com/lambda-feedback/regmock/util/logging"
)

var (
	waitCmdDescription = `The wait command blocks until the mock registry accepts
connections on the given host and port, or fails once the
timeout elapses. Use it in test harness scripts after start-
ing the serve command in the background.`
	waitCmd = &cli.Command{
		Name:        "wait",
		Usage:       "Wait until the mock registry accepts connections.",
		Description: waitCmdDescription,
		Action:      waitAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host the mock registry listens on.",
				Value:    "127.0.0.1",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port the mock registry listens on.",
				Value:    8080,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Usage:   "How long to wait before giving up.",
				Value:   10 * time.Second,
			},
		},
	}
)

func waitAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	addr := server.HttpConfig{
		Host: ctx.String("host"),
		Port: ctx.Int("port"),
	}.Address()

	log = log.With(zap.String("address", addr))

	if err := server.WaitReady(ctx.Context, addr, ctx.Duration("timeout")); err != nil {
		return fmt.Errorf("mock registry not ready: %w", err)
	}

	log.Info("mock registry ready")

	return nil
}

func init() {
	rootApp.Commands = append(rootApp.Commands, waitCmd)
}
