// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import "reflect"

// Handler is a long-lived, caller-registered unit of work raised by
// external callers through the same dispatch path as the function
// families. A concrete handler type fixes its parameter and result
// shapes, so the handler's dynamic type is a stable work-type
// identity and the generic signatures check both shapes at the call
// boundary.
type Handler[P, R any] interface {
	Execute(app App, param P) (R, error)
}

// Register installs h keyed by its dynamic type. The handler's trigger
// is created lazily on the first Raise, through the external family's
// single-flight registry. Registering a second handler of the same
// type returns ErrHandlerRegistered: the first instance owns the slot
// for the process lifetime.
//
// Register itself never dispatches, so it may be called before
// Initialize.
func Register[P, R any](b *Bridge, h Handler[P, R]) error {
	if h == nil {
		return errNilHandler
	}
	key := reflect.TypeOf(h)
	exec := func(app App, param any, settle func(any, error)) {
		// Comma-ok so a nil interface parameter executes with the
		// zero P instead of panicking inside the host callback.
		p, _ := param.(P)
		settle(safeExecute(app, h, p))
	}
	b.handlers.mu.Lock()
	defer b.handlers.mu.Unlock()
	if b.handlers.m == nil {
		b.handlers.m = make(map[reflect.Type]execFunc)
	}
	if _, ok := b.handlers.m[key]; ok {
		return ErrHandlerRegistered
	}
	b.handlers.m[key] = exec
	return nil
}

func safeExecute[P, R any](app App, h Handler[P, R], p P) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = nil, &PanicError{Value: r}
		}
	}()
	return h.Execute(app, p)
}

// Raise dispatches param to the handler registered under h's dynamic
// type. h carries identity only; the registered instance executes.
//
// Raising an unregistered handler type is not an error: the returned
// future is already settled with the zero R. Callers that need to
// distinguish "no handler" from "handler returned zero" must register
// first.
func Raise[P, R any](b *Bridge, h Handler[P, R], param P) *Future[R] {
	var zero R
	if h == nil {
		return Resolved(zero)
	}
	key := reflect.TypeOf(h)
	b.handlers.mu.Lock()
	exec, ok := b.handlers.m[key]
	b.handlers.mu.Unlock()
	if !ok {
		return Resolved(zero)
	}
	if !b.ready() {
		return Failed[R](ErrNotInitialized)
	}
	s, tr, err := b.external.getOrCreate(b, key, exec)
	if err != nil {
		return Failed[R](err)
	}
	return dispatch[R](s, tr, param)
}
