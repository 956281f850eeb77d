// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"code.hybscloud.com/kont"
)

// bridgeHandler implements kont.Handler for bridge effects whose
// failures are not part of the protocol. A failed effect panics;
// protocols that need to observe failures use ExecError.
type bridgeHandler[R any] struct {
	b *Bridge
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h bridgeHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	bop, ok := op.(bridgeDispatcher)
	if !ok {
		panic("apix: unhandled effect in bridgeHandler")
	}
	v, err := bop.DispatchBridge(h.b)
	if err != nil {
		panic("apix: bridge effect failed in Exec: " + err.Error())
	}
	return v, true
}

// Exec runs a Cont-world protocol against b, parking the calling
// goroutine at each bridge effect until the API thread has serviced
// it. The bridge must be initialized and its host loop running.
func Exec[R any](b *Bridge, protocol kont.Eff[R]) R {
	h := bridgeHandler[R]{b: b}
	return kont.Handle(protocol, h)
}

// bridgeErrorHandler handles bridge effects, short-circuiting the
// protocol on the first failed dispatch.
type bridgeErrorHandler[R any] struct {
	b *Bridge
}

// Dispatch implements kont.Handler for the error-observing executor.
func (h bridgeErrorHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	bop, ok := op.(bridgeDispatcher)
	if !ok {
		panic("apix: unhandled effect in bridgeErrorHandler")
	}
	v, err := bop.DispatchBridge(h.b)
	if err != nil {
		return kont.Left[error, R](err), false
	}
	return v, true
}

// ExecError runs a Cont-world protocol against b with failure
// handling. Returns Either[error, R] — Right on success, Left holding
// the first failed effect's error.
func ExecError[R any](b *Bridge, protocol kont.Eff[R]) kont.Either[error, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[error, R]](protocol, func(r R) kont.Either[error, R] {
		return kont.Right[error, R](r)
	})
	h := bridgeErrorHandler[R]{b: b}
	return kont.Handle(wrapped, h)
}
