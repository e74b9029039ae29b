// Package tasks provides the simulated asynchronous operations the console
// performs against resources: provisioning, upgrades and similar delayed
// completions. There is no real backend; every scheduled operation completes
// successfully after its delay.
package tasks

import (
	"errors"
	"sync"
	"time"
)

// ErrOperationInFlight is returned when a resource already has a pending
// operation. At most one simulated operation may be in flight per resource;
// a second request is rejected rather than raced.
var ErrOperationInFlight = errors.New("an operation is already in flight for this resource")

// Runner schedules at most one delayed completion per resource id.
// Completion callbacks run on their own goroutine after the delay elapses;
// cancellation is not supported, matching the always-completing behavior of
// the simulated backend.
type Runner struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewRunner() *Runner {
	return &Runner{inFlight: make(map[string]struct{})}
}

// Run schedules complete to fire after delay, keyed by resource id. It
// returns ErrOperationInFlight if an operation for the same id has not yet
// completed. The in-flight mark is released after complete returns, so a
// follow-up operation can be scheduled from within the callback's caller.
func (r *Runner) Run(id string, delay time.Duration, complete func()) error {
	r.mu.Lock()
	if _, busy := r.inFlight[id]; busy {
		r.mu.Unlock()
		return ErrOperationInFlight
	}
	r.inFlight[id] = struct{}{}
	r.mu.Unlock()

	time.AfterFunc(delay, func() {
		defer func() {
			r.mu.Lock()
			delete(r.inFlight, id)
			r.mu.Unlock()
		}()
		complete()
	})
	return nil
}

// InFlight reports whether the resource currently has a pending operation.
func (r *Runner) InFlight(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, busy := r.inFlight[id]
	return busy
}
