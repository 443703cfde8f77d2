package main

import (
	"context"
	"fmt"

	"github.com/atlanticdynamic/hellocontainer/internal/fancy"
	"github.com/urfave/cli/v3"
)

var configCmd = &cli.Command{
	Name:  "config",
	Usage: "Validate and print the built-in configuration",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		cfg, err := configFromFlags(cmd)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			return cli.Exit(fmt.Sprintf("%s %v", fancy.ErrorText("invalid:"), err), 1)
		}

		w := cmd.Root().Writer
		fmt.Fprintf(w, "%s\n\n", fancy.ValidText("Configuration is valid"))
		fmt.Fprintln(w, cfg)
		return nil
	},
}
