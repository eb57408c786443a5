package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/lambda-feedback/regmock/app"
	"github.com/lambda-feedback/regmock/app/lambda"
	"github.com/lambda-feedback/regmock/util/logging"
)

var (
	lambdaCmdDescription = `The lambda command starts the mock registry as an AWS Lambda
runtime interface client, which allows it to be invoked by
the AWS Lambda runtime behind an API Gateway or an ALB.

The command will start the AWS runtime interface client and
blocks indefinitely, processing incoming AWS Lambda events.`
	lambdaCmd = &cli.Command{
		Name:        "lambda",
		Usage:       "Run the mock registry as an AWS Lambda handler",
		Description: lambdaCmdDescription,
		Action:      lambdaAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "lambda-proxy-source",
				Usage:    "the source of the AWS Lambda event. Options: API_GW_V1, API_GW_V2, ALB.",
				Value:    "API_GW_V2",
				EnvVars:  []string{"LAMBDA_PROXY_SOURCE"},
				Category: "lambda",
			},
		},
	}
)

func lambdaAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := parseCommandConfig[lambda.Config](ctx, lambda.DefaultConfig)
	if err != nil {
		return err
	}

	log.Info("starting AWS Lambda handler")

	return app.Run(ctx.Context, lambda.Module(cfg))
}

func init() {
	lambdaCmd.Flags = append(lambdaCmd.Flags, registryFlags...)

	rootApp.Commands = append(rootApp.Commands, lambdaCmd)
}
