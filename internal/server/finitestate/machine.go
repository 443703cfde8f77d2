// Package finitestate tracks the lifecycle of the responder runnable.
package finitestate

import (
	"context"
	"log/slog"
	"time"

	"github.com/robbyt/go-fsm"
)

// State names match the ones go-supervisor expects from a Stateable runnable.
const (
	StatusNew      = "New"
	StatusBooting  = "Booting"
	StatusRunning  = "Running"
	StatusStopping = "Stopping"
	StatusStopped  = "Stopped"
	StatusError    = "Error"
	StatusUnknown  = "Unknown"
)

// ResponderTransitions lists the allowed moves. Running is the "listening" state;
// Stopped and Error are terminal for a process, New is only re-entered by tests.
var ResponderTransitions = map[string][]string{
	StatusNew:      {StatusBooting, StatusError},
	StatusBooting:  {StatusRunning, StatusStopping, StatusError},
	StatusRunning:  {StatusStopping, StatusError},
	StatusStopping: {StatusStopped, StatusError},
	StatusStopped:  {StatusNew},
	StatusError:    {StatusNew, StatusStopped},
}

// Machine is the subset of the fsm used by the responder.
type Machine interface {
	// Transition attempts to transition the state machine to the specified state.
	Transition(state string) error

	// TransitionBool attempts to transition the state machine to the specified state.
	TransitionBool(state string) bool

	// TransitionIfCurrentState attempts to transition the state machine to the specified state
	TransitionIfCurrentState(currentState, newState string) error

	// SetState sets the state of the state machine to the specified state.
	SetState(state string) error

	// GetState returns the current state of the state machine.
	GetState() string

	// GetStateChan returns a channel that emits the state machine's state whenever it changes.
	// The channel is closed when the provided context is canceled.
	GetStateChan(ctx context.Context) <-chan string
}

// ResponderFSM embeds fsm.Machine and overrides GetStateChan for sync broadcast
type ResponderFSM struct {
	*fsm.Machine
}

// GetStateChan delivers every transition, waiting up to five seconds per subscriber,
// so a Stopped state is not lost while the supervisor is shutting down.
func (m *ResponderFSM) GetStateChan(ctx context.Context) <-chan string {
	return m.GetStateChanWithOptions(ctx, fsm.WithSyncTimeout(5*time.Second))
}

// New creates a state machine starting in StatusNew.
func New(handler slog.Handler) (Machine, error) {
	machine, err := fsm.New(handler, StatusNew, ResponderTransitions)
	if err != nil {
		return nil, err
	}
	return &ResponderFSM{Machine: machine}, nil
}
