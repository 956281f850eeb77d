// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

// dispatch installs a pendingRequest carrying param into s and signals
// tr. It returns as soon as installation succeeds; the future settles
// whenever the host services the signal.
func dispatch[R any](s *slot, tr Trigger, param any) *Future[R] {
	f := newFuture[R]()
	s.install(&pendingRequest{param: param, settle: settleErased(f)})
	tr.Signal()
	return f
}

// settleErased adapts a typed future to the erased settle shape of
// pendingRequest. The value is ignored when err is non-nil.
func settleErased[R any](f *Future[R]) func(any, error) {
	return func(v any, err error) {
		if err != nil {
			var zero R
			f.settle(zero, err)
			return
		}
		// Comma-ok so a nil interface result settles the zero R
		// instead of panicking inside the host callback.
		rv, _ := v.(R)
		f.settle(rv, nil)
	}
}

// execSyncFn is the exec for the synchronous function family: the
// parameter is the erased caller-supplied function, executed here on
// the API thread and settled immediately.
func execSyncFn(app App, param any, settle func(any, error)) {
	fn := param.(func(App) (any, error))
	settle(safeCall(app, fn))
}

func safeCall(app App, fn func(App) (any, error)) (v any, err error) {
	defer func() {
		if p := recover(); p != nil {
			v, err = nil, &PanicError{Value: p}
		}
	}()
	return fn(app)
}

// execAsyncFn is the exec for the asynchronous function family: the
// function starts further work and returns an inner future that may
// still be pending when this callback returns control to the host.
// The caller's future is chained to the inner one, never settled here:
// callback-returned does not imply work-complete.
func execAsyncFn(app App, param any, settle func(any, error)) {
	fn := param.(func(App) anyFuture)
	inner, err := safeAsyncCall(app, fn)
	if err != nil {
		settle(nil, err)
		return
	}
	inner.onSettled(settle)
}

func safeAsyncCall(app App, fn func(App) anyFuture) (f anyFuture, err error) {
	defer func() {
		if p := recover(); p != nil {
			f, err = nil, &PanicError{Value: p}
		}
	}()
	return fn(app), nil
}

// asAnyFuture erases a typed future for the asynchronous exec path.
// The nil check happens here, while the pointer type is still known.
func asAnyFuture[R any](fut *Future[R]) anyFuture {
	if fut == nil {
		return Failed[R](errNilFuture)
	}
	return fut
}
