// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package apix_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"code.hybscloud.com/apix"
	"code.hybscloud.com/atomix"
)

var errBoom = errors.New("boom")

// startLoop runs the host callback loop until test cleanup.
func startLoop(tb testing.TB, h interface {
	Run(context.Context) error
}) {
	tb.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	tb.Cleanup(cancel)
	go h.Run(ctx)
}

// initOn runs b.Initialize on the host loop and waits for the outcome.
func initOn(tb testing.TB, h interface {
	Submit(func(apix.App))
}, b *apix.Bridge) {
	tb.Helper()
	errc := make(chan error, 1)
	h.Submit(func(apix.App) { errc <- b.Initialize() })
	if err := <-errc; err != nil {
		tb.Fatalf("initialize: %v", err)
	}
}

// startBridge boots a LoopHost and an initialized bridge on it.
func startBridge(tb testing.TB) (*apix.Bridge, *apix.LoopHost) {
	tb.Helper()
	host := apix.NewLoopHost("app")
	startLoop(tb, host)
	b := apix.New(host)
	initOn(tb, host, b)
	return b, host
}

// testCtx bounds waits so a broken dispatch fails the test instead of
// hanging it.
func testCtx(tb testing.TB) context.Context {
	tb.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	tb.Cleanup(cancel)
	return ctx
}

// countingHost counts CreateTrigger calls, bootstrap included.
type countingHost struct {
	*apix.LoopHost
	created atomix.Uint32
}

func (h *countingHost) CreateTrigger(cb func(apix.App)) (apix.Trigger, error) {
	h.created.Add(1)
	return h.LoopHost.CreateTrigger(cb)
}

// flakyHost fails the next CreateTrigger while armed, then recovers.
type flakyHost struct {
	*apix.LoopHost
	armed atomix.Uint32
}

func (h *flakyHost) CreateTrigger(cb func(apix.App)) (apix.Trigger, error) {
	if h.armed.CompareAndSwap(1, 0) {
		return nil, errBoom
	}
	return h.LoopHost.CreateTrigger(cb)
}
