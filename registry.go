// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"fmt"
	"reflect"
	"sync"
)

// registryEntry is the single-flight placeholder for one work-type
// key. ready is closed once slot/trigger (or err) are published;
// concurrent callers for the same key park on it instead of starting
// a second construction.
type registryEntry struct {
	ready   chan struct{}
	slot    *slot
	trigger Trigger
	err     error
}

// registry maps work-type identity to its lazily constructed
// slot/trigger pair. The bridge keeps one registry per execution
// family (synchronous functions, asynchronous functions, external
// handlers): identical result types in different families must not
// collide.
type registry struct {
	mu sync.Mutex
	m  map[reflect.Type]*registryEntry
}

// getOrCreate returns the slot/trigger pair for key, constructing it
// at most once per live key. The first caller installs a placeholder
// and builds the trigger through the bridge's factory slot; everyone
// else parks on the placeholder and shares its outcome.
//
// A failed construction is published to all current waiters and the
// placeholder removed, so a later call re-attempts from scratch.
func (r *registry) getOrCreate(b *Bridge, key reflect.Type, exec execFunc) (*slot, Trigger, error) {
	r.mu.Lock()
	if r.m == nil {
		r.m = make(map[reflect.Type]*registryEntry)
	}
	if e, ok := r.m[key]; ok {
		r.mu.Unlock()
		<-e.ready
		return e.slot, e.trigger, e.err
	}
	e := &registryEntry{ready: make(chan struct{}), slot: newSlot(exec)}
	r.m[key] = e
	r.mu.Unlock()

	tr, err := b.createTrigger(e.slot)
	if err != nil {
		e.err = fmt.Errorf("apix: create trigger for %v: %w", key, err)
		r.mu.Lock()
		delete(r.m, key)
		r.mu.Unlock()
		close(e.ready)
		return nil, nil, e.err
	}
	e.trigger = tr
	close(e.ready)
	return e.slot, e.trigger, nil
}
