// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import "reflect"

// Entry points normalize every caller shape into the canonical
// func(App) (R, error) or func(App) *Future[R] forms before dispatch.
// No concurrency logic lives here.
//
// Function-family slots are keyed by result type: a given result type
// corresponds to one interchangeable execution slot per family, and
// the parameter handed to the API thread is the function itself.

// RunFunc executes fn on the API thread and settles the returned
// future with its result.
func RunFunc[R any](b *Bridge, fn func() (R, error)) *Future[R] {
	return RunWith(b, func(App) (R, error) { return fn() })
}

// RunWith executes fn on the API thread with the host application
// context. This is the canonical synchronous shape.
//
// The call parks until the slot's previously installed request has
// been accepted, then returns the completion future immediately; it
// never waits for execution itself. Calling before Initialize settles
// the future with ErrNotInitialized.
func RunWith[R any](b *Bridge, fn func(App) (R, error)) *Future[R] {
	if !b.ready() {
		return Failed[R](ErrNotInitialized)
	}
	s, tr, err := b.syncFns.getOrCreate(b, reflect.TypeFor[R](), execSyncFn)
	if err != nil {
		return Failed[R](err)
	}
	erased := func(app App) (any, error) { return fn(app) }
	return dispatch[R](s, tr, erased)
}

// RunAsync executes fn on the API thread; fn returns an inner future
// that may settle after the host callback has returned. The returned
// future is chained to it.
func RunAsync[R any](b *Bridge, fn func() *Future[R]) *Future[R] {
	return RunAsyncWith(b, func(App) *Future[R] { return fn() })
}

// RunAsyncWith is the canonical asynchronous shape, with the host
// application context.
func RunAsyncWith[R any](b *Bridge, fn func(App) *Future[R]) *Future[R] {
	if !b.ready() {
		return Failed[R](ErrNotInitialized)
	}
	s, tr, err := b.asyncFns.getOrCreate(b, reflect.TypeFor[R](), execAsyncFn)
	if err != nil {
		return Failed[R](err)
	}
	erased := func(app App) anyFuture { return asAnyFuture(fn(app)) }
	return dispatch[R](s, tr, erased)
}

// RunAction executes fn on the API thread for its side effects only.
func RunAction(b *Bridge, fn func()) *Future[struct{}] {
	return RunWith(b, func(App) (struct{}, error) {
		fn()
		return struct{}{}, nil
	})
}

// RunActionWith executes fn on the API thread for its side effects
// only, with the host application context.
func RunActionWith(b *Bridge, fn func(App)) *Future[struct{}] {
	return RunWith(b, func(app App) (struct{}, error) {
		fn(app)
		return struct{}{}, nil
	})
}
