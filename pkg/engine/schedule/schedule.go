// Package schedule provides timer primitives for event-driven game loops.
//
// A Scheduler hands out cancellable Handles for one-shot and repeating
// callbacks. Loop runs callbacks in real time but funnels every one of them,
// together with posted input events, through a single queue so game state is
// only ever touched by one goroutine. Manual is a deterministic clock for tests.
package schedule

import (
	"sync/atomic"
	"time"
)

// Handle cancels a scheduled callback.
type Handle interface {
	// Stop prevents any further runs of the callback. It returns false if the
	// handle was already stopped or a one-shot callback has already run.
	Stop() bool
}

// Scheduler creates timed callbacks and reports the current time.
type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Handle
	Every(d time.Duration, fn func()) Handle
}

// task is the shared cancellation state for a scheduled callback.
type task struct {
	stopped atomic.Bool
	fired   atomic.Bool
	once    bool
	cancel  func()
}

// Stop implements Handle.
func (t *task) Stop() bool {
	if t.once && t.fired.Load() {
		return false
	}
	if !t.stopped.CompareAndSwap(false, true) {
		return false
	}
	if t.cancel != nil {
		t.cancel()
	}
	return true
}

// run executes fn unless the task has been stopped. One-shot tasks run at most once.
func (t *task) run(fn func()) {
	if t.stopped.Load() {
		return
	}
	if t.once && !t.fired.CompareAndSwap(false, true) {
		return
	}
	fn()
}

// Stopped is a Handle that is already cancelled.
var Stopped Handle = stoppedHandle{}

type stoppedHandle struct{}

func (stoppedHandle) Stop() bool { return false }

// StopAll stops every non-nil handle.
func StopAll(handles ...Handle) {
	for _, h := range handles {
		if h != nil {
			h.Stop()
		}
	}
}
