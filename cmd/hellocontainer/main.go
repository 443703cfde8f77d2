package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "hellocontainer",
		Version: Version,
		Usage:   "Answer every HTTP GET on 0.0.0.0:3000 with a fixed greeting",
		Flags:   logFlags(),
		Action:  serveAction,
		Commands: []*cli.Command{
			serveCmd,
			versionCmd,
			configCmd,
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
