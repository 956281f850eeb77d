// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"context"

	"code.hybscloud.com/kont"
)

// bridgeDispatcher is the structural interface for bridge effect
// operations. DispatchBridge dispatches the operation on b and parks
// until its future settles.
type bridgeDispatcher interface {
	DispatchBridge(b *Bridge) (kont.Resumed, error)
}

// Do is the effect operation for running Fn on the API thread.
// Perform(Do[T]{Fn: fn}) resumes with fn's result.
type Do[T any] struct {
	kont.Phantom[T]
	Fn func(App) T
}

// DispatchBridge handles Do by dispatching through the synchronous
// function family and awaiting the completion future.
func (d Do[T]) DispatchBridge(b *Bridge) (kont.Resumed, error) {
	f := RunWith(b, func(app App) (T, error) { return d.Fn(app), nil })
	v, err := f.Wait(context.Background())
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Await is the effect operation for awaiting an already-dispatched
// future from inside a protocol. Perform(Await[T]{Future: f}) resumes
// with the future's value.
type Await[T any] struct {
	kont.Phantom[T]
	Future *Future[T]
}

// DispatchBridge handles Await by parking on the future.
func (a Await[T]) DispatchBridge(b *Bridge) (kont.Resumed, error) {
	if a.Future == nil {
		return nil, errNilFuture
	}
	v, err := a.Future.Wait(context.Background())
	if err != nil {
		return nil, err
	}
	return v, nil
}
