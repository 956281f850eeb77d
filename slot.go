// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// slotCapacity is the bounded capacity of the handoff queue. The
// install gate admits one producer at a time and is only re-armed once
// the API thread has dequeued, so a single element is live at once;
// lfq.SPSC requires a capacity of at least 2.
const slotCapacity = 2

// pendingRequest is one caller's parameter plus its completion sender.
// Created per dispatch, consumed exactly once by the serve loop, then
// discarded.
type pendingRequest struct {
	param  any
	settle func(any, error)
}

// execFunc runs one accepted request on the API thread. Implementations
// settle exactly once and contain panics: an escaping panic would
// unwind into the host's callback loop.
type execFunc func(app App, param any, settle func(any, error))

// slot is the per-work-type state: one execution function, one install
// gate, and the lock-free cell that hands the current request to the
// API thread. Created lazily on first use of its key and never
// destroyed.
type slot struct {
	// gate is a capacity-1 token channel held from installation until
	// the serve loop accepts the parameter. Blocked installers are
	// woken in FIFO order by the runtime, so requests are serviced in
	// the order their installation succeeds.
	gate chan struct{}

	// pending hands the installed request to the API thread.
	// Single-producer by construction: only the gate holder enqueues.
	pending lfq.SPSC[*pendingRequest]

	// installCell is the enqueue-side cell; written only by the
	// current gate holder.
	installCell *pendingRequest

	exec execFunc
}

func newSlot(exec execFunc) *slot {
	s := &slot{
		gate: make(chan struct{}, 1),
		exec: exec,
	}
	s.pending.Init(slotCapacity)
	return s
}

// install makes req the slot's current request, parking until the
// previously installed request has been accepted by the serve loop.
// The wait is a channel park, never a spin: installers may themselves
// be running on a UI goroutine of the calling side.
func (s *slot) install(req *pendingRequest) {
	s.gate <- struct{}{}
	s.installCell = req
	if err := s.pending.Enqueue(&s.installCell); err != nil {
		// Gate admission implies the cell was drained.
		panic("apix: pending cell full past install gate")
	}
}

// serve drains and executes accepted requests. It is the slot's
// trigger callback, invoked by the host on the API thread. An empty
// drain is a no-op: the host may coalesce several signals into one
// callback invocation.
//
// The gate token is released immediately after dequeue, before exec
// runs. The single-flight guarantee covers the parameter handoff, not
// the execution body: the next caller may install while a long-running
// asynchronous exec is still finishing, and the host itself already
// forbids overlapping API-thread execution.
func (s *slot) serve(app App) {
	for {
		req, err := s.pending.Dequeue()
		if err != nil {
			if !iox.IsWouldBlock(err) {
				panic("apix: pending cell dequeue: " + err.Error())
			}
			return
		}
		<-s.gate
		s.exec(app, req.param, req.settle)
	}
}
