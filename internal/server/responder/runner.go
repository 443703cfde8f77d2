// Package responder serves the fixed greeting over HTTP/1.1.
//
// The Runner binds its socket, prints a single readiness line, and then
// answers every GET with status 200 and the configured body until it is
// stopped. There is no drain on stop: open connections are closed at once.
package responder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"

	"github.com/atlanticdynamic/hellocontainer/internal/config"
	"github.com/atlanticdynamic/hellocontainer/internal/server/finitestate"
	"github.com/atlanticdynamic/hellocontainer/internal/server/responder/accesslog"
	"github.com/robbyt/go-supervisor/supervisor"
)

// Interface guards
var (
	_ supervisor.Runnable  = (*Runner)(nil)
	_ supervisor.Stateable = (*Runner)(nil)
)

// Runner is the go-supervisor runnable that owns the listening socket.
type Runner struct {
	cfg        *config.Config
	handler    http.Handler
	fsm        finitestate.Machine
	logger     *slog.Logger
	logHandler slog.Handler
	readyOut   io.Writer

	mutex    sync.Mutex
	listener net.Listener
	server   *http.Server
	addr     net.Addr
}

// NewRunner validates cfg and assembles the handler. Nothing is bound until Run.
func NewRunner(cfg *config.Config, options ...Option) (*Runner, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:        cfg,
		logger:     slog.Default().WithGroup("responder.Runner"),
		logHandler: slog.Default().Handler(),
		readyOut:   os.Stdout,
	}

	for _, option := range options {
		option(r)
	}

	machine, err := finitestate.New(r.logger.Handler())
	if err != nil {
		return nil, fmt.Errorf("failed to create state machine: %w", err)
	}
	r.fsm = machine

	route, err := newRoute(cfg.Body(), accesslog.New(r.logHandler), r.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}
	r.handler = route

	return r, nil
}

// String returns a unique identifier for this runner
func (r *Runner) String() string {
	return fmt.Sprintf("Responder[%s]", r.cfg.Address())
}

// Handler returns the assembled HTTP handler, for serving without a socket.
func (r *Runner) Handler() http.Handler {
	return r.handler
}

// Addr returns the bound address, or nil before the socket is bound.
func (r *Runner) Addr() net.Addr {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.addr
}

// Run binds (unless a listener was provided), prints the readiness line and
// serves until ctx is cancelled or Stop is called. A bind failure is returned
// wrapped in ErrBindFailure and nothing is printed.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.fsm.Transition(finitestate.StatusBooting); err != nil {
		return fmt.Errorf("%w: %w", ErrRunnerState, err)
	}

	listener, err := r.bind()
	if err != nil {
		r.logger.Error("Failed to bind", "address", r.cfg.Address(), "error", err)
		r.setStateError()
		return err
	}

	server := &http.Server{
		Handler:  r.handler,
		ErrorLog: slog.NewLogLogger(r.logHandler, slog.LevelDebug),
	}

	r.mutex.Lock()
	r.server = server
	r.addr = listener.Addr()
	r.mutex.Unlock()

	if err := r.fsm.Transition(finitestate.StatusRunning); err != nil {
		// Stop arrived while booting
		_ = listener.Close()
		r.fsm.TransitionBool(finitestate.StatusStopped)
		r.logger.Debug("Stopped before serving", "state", r.fsm.GetState())
		return nil
	}

	r.logger.Info("Listening", "address", listener.Addr().String())
	if _, err := fmt.Fprintln(r.readyOut, config.FormatReadyMessage(boundPort(listener))); err != nil {
		r.logger.Warn("Failed to write readiness line", "error", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		r.Stop()
		err = <-serveErr
	case err = <-serveErr:
	}

	if errors.Is(err, http.ErrServerClosed) {
		r.fsm.TransitionBool(finitestate.StatusStopping)
		r.fsm.TransitionBool(finitestate.StatusStopped)
		r.logger.Debug("Responder stopped")
		return nil
	}

	r.setStateError()
	return fmt.Errorf("%w: %w", ErrServe, err)
}

// bind returns the injected listener once, or binds the configured address.
func (r *Runner) bind() (net.Listener, error) {
	r.mutex.Lock()
	listener := r.listener
	r.listener = nil
	r.mutex.Unlock()

	if listener != nil {
		return listener, nil
	}
	return Listen(r.cfg.Address())
}

// Stop closes the listener and every open connection immediately.
func (r *Runner) Stop() {
	r.logger.Debug("Stopping responder")
	r.fsm.TransitionBool(finitestate.StatusStopping)

	r.mutex.Lock()
	server := r.server
	r.mutex.Unlock()

	if server == nil {
		return
	}
	if err := server.Close(); err != nil {
		r.logger.Warn("Error closing server", "error", err)
	}
}
