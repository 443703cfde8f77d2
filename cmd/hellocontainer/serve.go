package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/atlanticdynamic/hellocontainer/cmd/hellocontainer/server"
	"github.com/atlanticdynamic/hellocontainer/internal/config"
	"github.com/urfave/cli/v3"
)

var serveCmd = &cli.Command{
	Name:   "serve",
	Usage:  "Start the responder (the default when no command is given)",
	Action: serveAction,
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return cli.Exit(err, 1)
	}
	SetupLogger(cfg.Logging.Level.String(), cfg.Logging.Format.String())

	if err := server.Run(ctx, slog.Default(), cfg, os.Stdout); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

// configFromFlags returns the fixed config with the logging flags applied.
func configFromFlags(cmd *cli.Command) (*config.Config, error) {
	logging, err := config.NewLoggingConfig(cmd.String(flagLogLevel), cmd.String(flagLogFormat))
	if err != nil {
		return nil, err
	}
	cfg := config.New()
	cfg.Logging = logging
	return cfg, nil
}
