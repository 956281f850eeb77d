// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"code.hybscloud.com/kont"
)

// probe carries one Poll observation across the effect boundary.
type probe[T any] struct {
	value T
	done  bool
}

// Poll repeatedly runs fn on the API thread until it reports done,
// then finishes with the observed value. Each probe is a separate
// dispatch: other requests for the same slot interleave between
// probes, so Poll never monopolizes the API thread.
func Poll[T any](fn func(App) (T, bool)) kont.Eff[T] {
	return DoBind(func(app App) probe[T] {
		v, ok := fn(app)
		return probe[T]{value: v, done: ok}
	}, func(p probe[T]) kont.Eff[T] {
		if p.done {
			return kont.Pure(p.value)
		}
		return Poll(fn)
	})
}

// Loop runs a recursive bridge protocol. step returns Left(nextState)
// to continue or Right(result) to finish.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if left, ok := e.GetLeft(); ok {
			return Loop(left, step)
		}
		right, _ := e.GetRight()
		return kont.Pure(right)
	})
}
