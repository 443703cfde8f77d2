package responder

import (
	"io"
	"log/slog"
	"net"
)

type Option func(*Runner)

// WithLogHandler sets a custom slog handler for the Runner and its access log.
func WithLogHandler(handler slog.Handler) Option {
	return func(r *Runner) {
		if handler != nil {
			r.logHandler = handler
			r.logger = slog.New(handler).WithGroup("responder.Runner")
		}
	}
}

// WithLogger sets a logger for the Runner instance.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithListener hands the Runner a socket that is already bound, so bind
// failures can be reported before the supervisor starts.
func WithListener(listener net.Listener) Option {
	return func(r *Runner) {
		r.listener = listener
	}
}

// WithReadyWriter sets where the readiness line goes. Defaults to stdout.
func WithReadyWriter(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.readyOut = w
		}
	}
}
