// Package server wires the responder into a go-supervisor process.
package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atlanticdynamic/hellocontainer/internal/config"
	"github.com/atlanticdynamic/hellocontainer/internal/server/responder"
	"github.com/robbyt/go-supervisor/supervisor"
)

// Run binds cfg's address, then hands the responder to a supervisor and blocks
// until ctx is cancelled or the process is signalled. The socket is bound
// before the supervisor starts, so a bind failure returns immediately and the
// readiness line is never written to stdout.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	cfg *config.Config,
	stdout io.Writer,
) error {
	if cfg == nil {
		cfg = config.New()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	logHandler := logger.Handler()

	listener, err := responder.Listen(cfg.Address())
	if err != nil {
		return err
	}

	runner, err := responder.NewRunner(
		cfg,
		responder.WithListener(listener),
		responder.WithLogHandler(logHandler),
		responder.WithReadyWriter(stdout),
	)
	if err != nil {
		_ = listener.Close()
		return fmt.Errorf("failed to create responder: %w", err)
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logHandler),
		supervisor.WithRunnables(runner),
	)
	if err != nil {
		_ = listener.Close()
		return fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info("Server shutdown complete")
	return nil
}
