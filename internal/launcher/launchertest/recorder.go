// Package launchertest provides a launcher.Runner that records invocations
// instead of starting processes.
package launchertest

import (
	"context"
	"sync"
)

// Call is one recorded invocation.
type Call struct {
	Command string
	Args    []string
}

// Recorder is a fake launcher.Runner. It returns ExitCode and Err for every
// call and runs OnRun, if set, before returning.
type Recorder struct {
	ExitCode int
	Err      error
	OnRun    func(command string, args []string)

	mu    sync.Mutex
	calls []Call
}

// Run records the invocation.
func (r *Recorder) Run(_ context.Context, command string, args []string) (int, error) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Command: command, Args: append([]string(nil), args...)})
	r.mu.Unlock()

	if r.OnRun != nil {
		r.OnRun(command, args)
	}
	return r.ExitCode, r.Err
}

// Calls returns a copy of the recorded invocations.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}
