package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net"
	"testing"

	"github.com/atlanticdynamic/hellocontainer/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	app := newApp()
	app.Writer = out
	app.ErrWriter = out
	err := app.Run(t.Context(), append([]string{"hellocontainer"}, args...))
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := runApp(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "hellocontainer version dev\n", out)
}

func TestConfigCmd(t *testing.T) {
	out, err := runApp(t, "config")
	require.NoError(t, err)

	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "0.0.0.0:3000")
	assert.Contains(t, out, config.DefaultGreeting)
}

func TestNewApp(t *testing.T) {
	app := newApp()
	assert.Equal(t, "hellocontainer", app.Name)
	assert.NotNil(t, app.Action, "running with no command must serve")

	names := make([]string, 0, len(app.Commands))
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"serve", "version", "config"}, names)
}

// TestServeAction_BindFailure occupies the fixed port so the action fails fast.
func TestServeAction_BindFailure(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	occupied, err := net.Listen("tcp4", config.New().Address())
	if err != nil {
		t.Skipf("port %d is not available for this test: %v", config.DefaultPort, err)
	}
	defer func() { assert.NoError(t, occupied.Close()) }()

	cmd := &cli.Command{
		Flags: logFlags(),
	}
	result := serveAction(context.Background(), cmd)

	var exitErr cli.ExitCoder
	ok := errors.As(result, &exitErr)
	require.True(t, ok, "Expected cli.ExitCoder, got %T", result)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, exitErr.Error(), "bind failure")
}

func TestConfigCmd_LoggingFlags(t *testing.T) {
	out, err := runApp(t, "--log-level", "debug", "--log-format", "json", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "Format: json")
	assert.Contains(t, out, "Level: debug")
}

func TestConfigFromFlags_Invalid(t *testing.T) {
	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagLogLevel, Value: "chatty"},
			&cli.StringFlag{Name: flagLogFormat, Value: "xml"},
		},
	}

	cfg, err := configFromFlags(cmd)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
	assert.ErrorIs(t, err, config.ErrInvalidLogFormat)
}
