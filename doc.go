// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package apix bridges arbitrary goroutines onto a host-owned API thread.
//
// A host (see [Host]) permits certain operations only on its own single
// thread and offers nothing but a signal-and-callback primitive: raise a
// pending request, and the host will invoke a bound callback once, at a
// time of its choosing. apix turns that primitive into typed
// request/response dispatch with [Future]-based completion.
//
// # Architecture
//
//   - Handoff: per-work-type slots hand the current request to the API thread through a bounded lock-free SPSC cell via [code.hybscloud.com/lfq]; a capacity-1 gate serializes installation in FIFO order.
//   - Bootstrap: creating a [Trigger] is itself API-thread work, so a hand-built factory slot (created by [Bridge.Initialize] on the API thread) services all "construct another trigger" requests.
//   - Registries: slot/trigger pairs are constructed single-flight per work-type key, one registry per execution family (synchronous, asynchronous, external handlers).
//   - Non-blocking: [Future.Try] returns [code.hybscloud.com/iox.ErrWouldBlock] while a completion is pending.
//   - Cont-world: [Do] and [Await] effects on [code.hybscloud.com/kont] let effectful protocols interleave API-thread work, evaluated with [Exec] or [ExecError].
//
// # Entry Points
//
//   - Synchronous: [RunFunc], [RunWith]; side effects only: [RunAction], [RunActionWith].
//   - Asynchronous: [RunAsync], [RunAsyncWith] — the work function returns a future that may settle after the host callback has returned.
//   - External handlers: [Register] a long-lived [Handler], [Raise] it by type identity. Raising an unregistered type settles with the zero result.
//   - Cont-world: [DoBind], [DoThen], [DoDone], [AwaitBind], [AwaitThen], [Poll], [Loop].
//
// # Lifecycle
//
// [New] binds a bridge to a host; [Bridge.Initialize] must then run once
// on the API thread before any dispatch (idempotent afterwards).
// Dispatch before that settles futures with [ErrNotInitialized].
// Signaled work cannot be cancelled: an abandoned future still settles,
// unobserved, when the host gets around to the callback.
//
// # Example
//
//	host := apix.NewLoopHost(app)
//	go host.Run(ctx)
//
//	b := apix.New(host)
//	host.Submit(func(apix.App) { b.Initialize() })
//
//	f := apix.RunFunc(b, func() (int, error) { return 42, nil })
//	n, err := f.Wait(ctx)
package apix
