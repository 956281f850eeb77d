// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"context"

	"code.hybscloud.com/atomix"
)

// jobCapacity bounds the LoopHost callback queue. Signals past the
// bound park the signaling goroutine until the loop catches up.
const jobCapacity = 128

// LoopHost is a reference Host: a single-goroutine callback loop that
// stands in for the embedding application in tests and standalone
// use. The goroutine running Run is the API thread; it services one
// callback at a time and never overlaps two invocations.
type LoopHost struct {
	app  App
	jobs chan func(App)

	// inCallback is nonzero while the loop executes a callback. The
	// CreateTrigger precondition check is best-effort: a concurrent
	// outside caller can slip through while the loop is mid-callback.
	inCallback atomix.Uint32
}

// NewLoopHost creates a host whose callbacks receive app.
func NewLoopHost(app App) *LoopHost {
	return &LoopHost{
		app:  app,
		jobs: make(chan func(App), jobCapacity),
	}
}

// Run services signaled callbacks until ctx is done and returns
// ctx.Err(). Exactly one Run may be active per host.
func (h *LoopHost) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-h.jobs:
			h.invoke(fn)
		}
	}
}

func (h *LoopHost) invoke(fn func(App)) {
	h.inCallback.Store(1)
	defer h.inCallback.Store(0)
	fn(h.app)
}

// Submit schedules fn to run on the loop as a callback. This is how a
// bridge's Initialize reaches the API thread before any trigger
// exists.
func (h *LoopHost) Submit(fn func(App)) {
	h.jobs <- fn
}

// CreateTrigger implements Host. Only callable from a loop callback,
// matching the host contract that trigger construction is an
// API-thread operation.
func (h *LoopHost) CreateTrigger(callback func(App)) (Trigger, error) {
	if h.inCallback.Load() == 0 {
		return nil, ErrOutsideAPIThread
	}
	return &loopTrigger{host: h, callback: callback}, nil
}

// loopTrigger enqueues its callback once per Signal. Delivering a
// distinct callback invocation per signal is a valid refinement of the
// host contract, which only promises "at least the installed request
// gets serviced".
type loopTrigger struct {
	host     *LoopHost
	callback func(App)
}

// Signal implements Trigger.
func (t *loopTrigger) Signal() {
	t.host.jobs <- t.callback
}
