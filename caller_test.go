// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"code.hybscloud.com/concur"
)

func TestCaller0DSize(t *testing.T) {
	c := concur.NewCaller0D(concur.NewCallable(concur.SerialPortal(), concur.NewProcedure(func() {})))
	if c.Size() != 1 {
		t.Fatalf("expected size 1, got %d", c.Size())
	}
}

func TestCaller1DSize(t *testing.T) {
	c := concur.NewCaller1D()
	for i := 0; i < 7; i++ {
		c.Append(concur.NewCallable(concur.SerialPortal(), concur.NewProcedure(func() {})))
	}
	if c.Size() != 7 {
		t.Fatalf("expected size 7, got %d", c.Size())
	}
}

func TestRepeatedCaller1D(t *testing.T) {
	var n int32
	callable := concur.NewCallable(concur.SerialPortal(), concur.NewProcedure(func() {
		atomic.AddInt32(&n, 1)
	}))
	c := concur.NewRepeatedCaller1D(4, callable)

	concur.SyncInvoke(func() (struct{}, error) { return struct{}{}, nil }, c)

	if n != 4 {
		t.Fatalf("expected 4 invocations, got %d", n)
	}
}

// TestCaller2DCoversEveryIndex proves that every appended callable runs
// exactly once regardless of how the work is partitioned across
// concurrency ranges.
func TestCaller2DCoversEveryIndex(t *testing.T) {
	const n = 37
	var hits [n]int32
	var mu sync.Mutex

	caller2D := concur.NewCaller2D(concur.ThreadPortal(true), 8)
	for i := 0; i < n; i++ {
		i := i
		caller2D.Append(concur.NewCallable(concur.SerialPortal(), concur.NewProcedure(func() {
			mu.Lock()
			hits[i]++
			mu.Unlock()
		})))
	}

	concur.SyncInvoke(func() (struct{}, error) { return struct{}{}, nil }, caller2D)

	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d ran %d times, want 1", i, h)
		}
	}
}

func TestCaller2DSizeMatchesAppended(t *testing.T) {
	caller2D := concur.NewCaller2D(concur.SerialPortal(), 4)
	for i := 0; i < 9; i++ {
		caller2D.Append(concur.NewCallable(concur.SerialPortal(), concur.NewProcedure(func() {})))
	}
	if caller2D.Size() != 9 {
		t.Fatalf("expected size 9, got %d", caller2D.Size())
	}
}
