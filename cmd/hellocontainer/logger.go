package main

import (
	"github.com/atlanticdynamic/hellocontainer/internal/logging"
	"github.com/urfave/cli/v3"
)

const (
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

// logFlags only affect diagnostics on stderr; the listener has no flags.
func logFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "Diagnostic log level on stderr (trace, debug, info, warn, error)",
			Value:   "info",
			Sources: cli.EnvVars("HELLOCONTAINER_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    flagLogFormat,
			Usage:   "Diagnostic log format on stderr (text, json)",
			Value:   logging.FormatText,
			Sources: cli.EnvVars("HELLOCONTAINER_LOG_FORMAT"),
		},
	}
}

// SetupLogger configures the default logger based on provided log level and format
func SetupLogger(logLevel, format string) {
	logging.SetupLogger(logLevel, format)
}
