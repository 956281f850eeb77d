// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix_test

import (
	"sync"
	"testing"
	"testing/quick"

	"code.hybscloud.com/apix"
)

// TestPropertyOwnValueResolution proves that for any number of
// concurrent callers targeting the same slot, every completion future
// resolves with its own caller's value: a 1:1 correspondence, never a
// value mixed between two callers.
func TestPropertyOwnValueResolution(t *testing.T) {
	skipRace(t)
	b, _ := startBridge(t)
	ctx := testCtx(t)

	property := func(width uint8) bool {
		n := int(width%32) + 1
		var wg sync.WaitGroup
		wg.Add(n)
		ok := make([]bool, n)
		for i := range n {
			go func() {
				defer wg.Done()
				f := apix.RunFunc(b, func() (int, error) { return i, nil })
				got, err := f.Wait(ctx)
				ok[i] = err == nil && got == i
			}()
		}
		wg.Wait()
		for _, v := range ok {
			if !v {
				return false
			}
		}
		return true
	}

	if err := quick.Check(property, &quick.Config{MaxCount: 25}); err != nil {
		t.Error(err)
	}
}

// TestPropertySingleFlightConstruction proves that no matter how many
// callers request a not-yet-existing work type concurrently, exactly
// one trigger construction executes for it, and every caller resolves
// through the shared pair.
func TestPropertySingleFlightConstruction(t *testing.T) {
	skipRace(t)

	property := func(width uint8) bool {
		n := int(width%8) + 2

		host := &countingHost{LoopHost: apix.NewLoopHost(nil)}
		startLoop(t, host)
		b := apix.New(host)
		initOn(t, host, b)
		host.created.Store(0)
		ctx := testCtx(t)

		var wg sync.WaitGroup
		wg.Add(n)
		ok := make([]bool, n)
		for i := range n {
			go func() {
				defer wg.Done()
				f := apix.RunFunc(b, func() (int, error) { return i, nil })
				got, err := f.Wait(ctx)
				ok[i] = err == nil && got == i
			}()
		}
		wg.Wait()
		for _, v := range ok {
			if !v {
				return false
			}
		}
		return host.created.Load() == 1
	}

	if err := quick.Check(property, &quick.Config{MaxCount: 25}); err != nil {
		t.Error(err)
	}
}
