// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"code.hybscloud.com/atomix"
)

// Bridge lifecycle states.
const (
	stateNew uint32 = iota
	stateInitializing
	stateReady
)

// Bridge is a process-scoped invocation bridge bound to one Host.
// All registries are owned by the instance rather than ambient global
// state, so independent bridges (and tests) do not interfere.
//
// A Bridge is created with New and becomes usable after Initialize has
// run on the API thread.
type Bridge struct {
	host   Host
	serial Serial

	// state gates dispatch on the bootstrap: factory and
	// factoryTrigger are published by the transition to stateReady.
	state atomix.Uint32

	// factory is the bootstrap slot. Creating any trigger is itself a
	// unit of work that must run on the API thread and therefore needs
	// a trigger to be dispatched through; the factory pair is the one
	// hand-built instance constructed outside the lazy path, and its
	// sole job is servicing "construct another trigger" requests.
	factory        *slot
	factoryTrigger Trigger

	syncFns  registry
	asyncFns registry
	external registry

	handlers struct {
		mu sync.Mutex
		m  map[reflect.Type]execFunc
	}
}

// New creates an uninitialized bridge bound to host.
func New(host Host) *Bridge {
	return &Bridge{host: host, serial: nextSerial()}
}

// Serial returns the serial number assigned to this bridge.
func (b *Bridge) Serial() Serial {
	return b.serial
}

// Initialize bootstraps the factory slot and its trigger. It must be
// called from the API thread: this is the only place the bridge calls
// Host.CreateTrigger directly instead of through the factory's own
// dispatch path. Idempotent; calls after a successful bootstrap are
// no-ops. A failed bootstrap resets the bridge so Initialize can be
// attempted again.
func (b *Bridge) Initialize() error {
	if !b.state.CompareAndSwap(stateNew, stateInitializing) {
		return nil
	}
	s := newSlot(b.execCreateTrigger)
	tr, err := b.host.CreateTrigger(s.serve)
	if err != nil {
		b.state.Store(stateNew)
		return fmt.Errorf("apix: bootstrap trigger: %w", err)
	}
	b.factory, b.factoryTrigger = s, tr
	b.state.Store(stateReady)
	return nil
}

func (b *Bridge) ready() bool {
	return b.state.Load() == stateReady
}

// execCreateTrigger is the factory slot's exec: the parameter is a new
// slot's serve callback and the result its freshly bound trigger. It
// runs inside the factory trigger's own host callback, which makes the
// direct CreateTrigger call legal.
func (b *Bridge) execCreateTrigger(_ App, param any, settle func(any, error)) {
	callback := param.(func(App))
	tr, err := b.host.CreateTrigger(callback)
	settle(tr, err)
}

// createTrigger builds a trigger for s by dispatching a create-trigger
// request through the factory slot, and parks until the host services
// it. Callers already running on the API thread must not reach here:
// the factory callback could never run beneath them.
func (b *Bridge) createTrigger(s *slot) (Trigger, error) {
	f := newFuture[Trigger]()
	b.factory.install(&pendingRequest{
		param: s.serve,
		settle: func(v any, err error) {
			if err != nil {
				f.settle(nil, err)
				return
			}
			f.settle(v.(Trigger), nil)
		},
	})
	b.factoryTrigger.Signal()
	return f.Wait(context.Background())
}
