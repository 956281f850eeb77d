// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"context"
	"sync"

	"code.hybscloud.com/iox"
)

// Future is the consuming side of a one-shot completion. It is settled
// exactly once by the API thread (or a Resolver) and observed by the
// original caller. Value and error are published before the done
// channel closes, so reads after Done are race-free without a lock.
type Future[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// settle completes the future exactly once. Duplicate and late
// completions are ignored.
func (f *Future[T]) settle(v T, err error) {
	f.once.Do(func() {
		f.value, f.err = v, err
		close(f.done)
	})
}

// Done returns a channel closed when the future has settled,
// for select-based waiting.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait parks until the future settles or ctx is done, whichever comes
// first. A ctx expiry abandons the result; the signaled work still
// executes and settles the future unobserved.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Try returns the result without parking. While the future is still
// pending it returns iox.ErrWouldBlock (the non-blocking boundary).
func (f *Future[T]) Try() (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
		var zero T
		return zero, iox.ErrWouldBlock
	}
}

// OnDone invokes cb on its own goroutine once the future settles.
func (f *Future[T]) OnDone(cb func(T, error)) {
	go func() {
		<-f.done
		cb(f.value, f.err)
	}()
}

// onSettled chains the erased settle of a pendingRequest to this
// future. Used by the asynchronous execution shape: the API-thread
// callback has usually returned by the time the inner future settles.
func (f *Future[T]) onSettled(settle func(any, error)) {
	go func() {
		<-f.done
		settle(f.value, f.err)
	}()
}

// anyFuture is the erased view of Future used inside slots, where the
// result type is not statically known.
type anyFuture interface {
	onSettled(settle func(any, error))
}

// Resolver is the settling side of a future created with NewFuture.
// Exactly one of Resolve or Reject takes effect.
type Resolver[T any] struct {
	f *Future[T]
}

// NewFuture creates an unsettled future and its resolver. Asynchronous
// work functions use this to hand the bridge a completion that outlives
// the API-thread callback.
func NewFuture[T any]() (Resolver[T], *Future[T]) {
	f := newFuture[T]()
	return Resolver[T]{f: f}, f
}

// Resolve settles the future with v.
func (r Resolver[T]) Resolve(v T) {
	r.f.settle(v, nil)
}

// Reject settles the future with err.
func (r Resolver[T]) Reject(err error) {
	var zero T
	r.f.settle(zero, err)
}

// Resolved returns a future already settled with v.
func Resolved[T any](v T) *Future[T] {
	f := newFuture[T]()
	f.settle(v, nil)
	return f
}

// Failed returns a future already settled with err.
func Failed[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.settle(zero, err)
	return f
}
