// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

// App is the host-side application context handed to every API-thread
// callback. Its dynamic type is owned by the host; bridge callers
// assert it to whatever the embedding host documents.
type App any

// Trigger abstracts the host's signal-and-callback primitive.
// Signal requests that the host invoke the trigger's bound callback
// once on the API thread, at a time of the host's choosing. The host
// may coalesce several signals into a single callback invocation;
// the bridge tolerates this because a slot has at most one request
// installed at the moment it signals.
//
// Signaled work cannot be revoked: a caller that abandons its future
// still has its callback serviced eventually.
type Trigger interface {
	Signal()
}

// Host is the single-threaded execution environment that owns the API
// thread. It exposes no return channel and no queueing guarantee beyond
// eventually running a signaled callback.
//
// CreateTrigger binds callback to a fresh Trigger. It is only callable
// from the API thread, which is why the bridge routes all trigger
// construction through its bootstrap factory slot (the factory's own
// trigger is built directly during Initialize, which must itself run
// on the API thread).
type Host interface {
	CreateTrigger(callback func(App)) (Trigger, error)
}
