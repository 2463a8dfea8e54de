// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur_test

import (
	"testing"

	"code.hybscloud.com/concur"
)

// BenchmarkFlatCounterFanout measures a sync-invoke fan-out of 64
// serial callables under the flat counter.
func BenchmarkFlatCounterFanout(b *testing.B) {
	b.ReportAllocs()
	caller := concur.NewRepeatedCaller1D(64, concur.NewCallable(concur.SerialPortal(), concur.NewProcedure(func() {})))
	for b.Loop() {
		concur.SyncInvoke(func() (struct{}, error) { return struct{}{}, nil }, caller)
	}
}

// BenchmarkTreeCounterFanout measures the same fan-out under a
// tree-sharded counter, to compare CAS-contention overhead against
// BenchmarkFlatCounterFanout.
func BenchmarkTreeCounterFanout(b *testing.B) {
	b.ReportAllocs()
	initializer, err := concur.NewTreeCounterInitializer(8)
	if err != nil {
		b.Fatal(err)
	}
	caller := concur.NewRepeatedCaller1D(64, concur.NewCallable(concur.SerialPortal(), concur.NewProcedure(func() {})))
	for b.Loop() {
		concur.SyncInvokeExplicit(initializer, concur.NewChannelSemaphore(), func() (struct{}, error) {
			return struct{}{}, nil
		}, caller)
	}
}

// BenchmarkThreadPortalFanout measures one fresh goroutine per task.
func BenchmarkThreadPortalFanout(b *testing.B) {
	b.ReportAllocs()
	caller := concur.NewRepeatedCaller1D(64, concur.NewCallable(concur.ThreadPortal(true), concur.NewProcedure(func() {})))
	for b.Loop() {
		concur.SyncInvoke(func() (struct{}, error) { return struct{}{}, nil }, caller)
	}
}

// BenchmarkThreadPoolPortalFanout measures the same 64 tasks dispatched
// through a fixed-size worker pool instead of one goroutine per task.
func BenchmarkThreadPoolPortalFanout(b *testing.B) {
	pool := concur.NewThreadPoolPortal(8, 64, concur.ThreadPortal(true))
	defer pool.Shutdown()
	caller := concur.NewRepeatedCaller1D(64, concur.NewCallable(pool, concur.NewProcedure(func() {})))
	b.ReportAllocs()
	for b.Loop() {
		concur.SyncInvoke(func() (struct{}, error) { return struct{}{}, nil }, caller)
	}
}

// BenchmarkCaller2DPartition measures Caller2D's range partitioning
// over 256 single-element callables spread across 8 ranges.
func BenchmarkCaller2DPartition(b *testing.B) {
	b.ReportAllocs()
	caller := concur.NewCaller2D(concur.ThreadPortal(true), 8)
	for i := 0; i < 256; i++ {
		caller.Append(concur.NewCallable(concur.SerialPortal(), concur.NewProcedure(func() {})))
	}
	for b.Loop() {
		concur.SyncInvoke(func() (struct{}, error) { return struct{}{}, nil }, caller)
	}
}
