package responder

import "errors"

var (
	// ErrBindFailure means the operating system refused the listening socket,
	// usually because the port is already in use. It is fatal at startup.
	ErrBindFailure = errors.New("bind failure")

	// ErrNilConfig is returned by NewRunner when no config is given.
	ErrNilConfig = errors.New("config is nil")
	// ErrRunnerState means Run was called on a runner that is not New.
	ErrRunnerState = errors.New("responder cannot start from its current state")
	// ErrServe wraps any serve loop error other than a requested close.
	ErrServe = errors.New("serve loop exited")
)
