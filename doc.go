// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package concur provides a completion-tracking fork/join protocol for
// concurrent work: declare a static or dynamic set of logically
// concurrent work items and dispatch them through a pluggable execution
// substrate (serial, fresh goroutines, or a worker pool), with exact
// completion semantics.
//
// # Architecture
//
//   - Counter: a lock-free hierarchical atomic counter tracks outstanding
//     work. [NewFlatCounterInitializer] and [NewTreeCounterInitializer]
//     are interchangeable implementations of [CounterInitializer].
//   - Portal: decides where a work item runs. [SerialPortal],
//     [ThreadPortal] and [NewThreadPoolPortal] are the built-in substrates.
//   - Composition: [Procedure] wraps user code to the canonical
//     (modifier, callback) signature; [Callable] binds a procedure to a
//     portal, single- or multi-phase; [Caller] bundles callables with a
//     known count ([NewCaller0D], [Caller1D], [Caller2D]).
//   - Invocation: [AsyncInvoke]/[AsyncInvokeExplicit] return immediately
//     and fire a callback on completion; [SyncInvoke]/[SyncInvokeExplicit]
//     block the calling goroutine until completion. [Fork] adds work to a
//     live invocation from inside a running procedure.
//
// # Example
//
//	caller := concur.NewCaller1D()
//	caller.Append(concur.NewCallable(concur.ThreadPortal(true), concur.NewProcedure(func() {
//		fmt.Println("hi")
//	})))
//	result := concur.SyncInvoke(func() (struct{}, error) {
//		return struct{}{}, nil
//	}, caller)
package concur
