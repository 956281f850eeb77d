// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix

import (
	"code.hybscloud.com/kont"
)

// DoBind runs fn on the API thread and passes its result to f.
// Fuses Perform(Do[T]{Fn: fn}) + Bind.
func DoBind[T, B any](fn func(App) T, f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Do[T]{Fn: fn}), f)
}

// DoThen runs fn on the API thread, discards its result, and
// continues with next. Fuses Perform(Do[T]{Fn: fn}) + Then.
func DoThen[T, B any](fn func(App) T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Do[T]{Fn: fn}), next)
}

// DoDone runs fn on the API thread and finishes with its result.
func DoDone[T any](fn func(App) T) kont.Eff[T] {
	return kont.Perform(Do[T]{Fn: fn})
}

// AwaitBind awaits fut and passes its value to f.
// Fuses Perform(Await[T]{Future: fut}) + Bind.
func AwaitBind[T, B any](fut *Future[T], f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Await[T]{Future: fut}), f)
}

// AwaitThen awaits fut, discards its value, and continues with next.
// Fuses Perform(Await[T]{Future: fut}) + Then.
func AwaitThen[T, B any](fut *Future[T], next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Await[T]{Future: fut}), next)
}
