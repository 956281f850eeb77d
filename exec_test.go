// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/apix"
	"code.hybscloud.com/kont"
)

func TestExecDoChain(t *testing.T) {
	skipRace(t)
	b, _ := startBridge(t)

	protocol := apix.DoBind(func(apix.App) int { return 21 },
		func(n int) kont.Eff[int] {
			return apix.DoDone(func(apix.App) int { return n * 2 })
		},
	)
	if got := apix.Exec(b, protocol); got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
}

func TestExecAwait(t *testing.T) {
	skipRace(t)
	b, _ := startBridge(t)

	fut := apix.RunFunc(b, func() (string, error) { return "ready", nil })
	protocol := apix.AwaitBind(fut, func(s string) kont.Eff[string] {
		return kont.Pure(s + "!")
	})
	if got := apix.Exec(b, protocol); got != "ready!" {
		t.Fatalf("got %q", got)
	}
}

func TestExecErrorShortCircuit(t *testing.T) {
	skipRace(t)
	b, _ := startBridge(t)

	ran := false
	protocol := apix.AwaitBind(apix.Failed[int](errBoom), func(n int) kont.Eff[int] {
		ran = true
		return kont.Pure(n)
	})
	e := apix.ExecError(b, protocol)
	left, ok := e.GetLeft()
	if !ok {
		t.Fatal("want Left")
	}
	if !errors.Is(left, errBoom) {
		t.Fatalf("left = %v, want errBoom", left)
	}
	if ran {
		t.Fatal("continuation ran past a failed effect")
	}
}

func TestExecErrorRight(t *testing.T) {
	skipRace(t)
	b, _ := startBridge(t)

	e := apix.ExecError(b, apix.DoDone(func(apix.App) int { return 9 }))
	right, ok := e.GetRight()
	if !ok || right != 9 {
		t.Fatalf("got %v, want Right(9)", e)
	}
}

func TestPoll(t *testing.T) {
	skipRace(t)
	b, _ := startBridge(t)

	count := 0 // touched only on the API thread
	got := apix.Exec(b, apix.Poll(func(apix.App) (int, bool) {
		count++
		return count, count >= 3
	}))
	if got != 3 {
		t.Fatalf("got %d, want 3", got)
	}
}

func TestLoop(t *testing.T) {
	skipRace(t)
	b, _ := startBridge(t)

	sum := apix.Exec(b, apix.Loop(0, func(s int) kont.Eff[kont.Either[int, int]] {
		return apix.DoDone(func(apix.App) kont.Either[int, int] {
			if s >= 10 {
				return kont.Right[int, int](s)
			}
			return kont.Left[int, int](s + 3)
		})
	}))
	if sum != 12 {
		t.Fatalf("got %d, want 12", sum)
	}
}
