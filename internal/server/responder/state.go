package responder

import (
	"context"

	"github.com/atlanticdynamic/hellocontainer/internal/server/finitestate"
)

// GetState returns the current state of the runner
func (r *Runner) GetState() string {
	return r.fsm.GetState()
}

// IsRunning reports whether the socket is bound and requests are being served
func (r *Runner) IsRunning() bool {
	return r.fsm.GetState() == finitestate.StatusRunning
}

// GetStateChan returns a channel that emits state changes
func (r *Runner) GetStateChan(ctx context.Context) <-chan string {
	return r.fsm.GetStateChan(ctx)
}

// setStateError moves to Error, forcing it if the transition table refuses.
func (r *Runner) setStateError() {
	if r.fsm.TransitionBool(finitestate.StatusError) {
		return
	}
	if err := r.fsm.SetState(finitestate.StatusError); err != nil {
		r.logger.Error("Failed to set error state", "error", err)
	}
}
