// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur_test

import (
	"sync/atomic"
	"testing"

	"code.hybscloud.com/concur"
)

// Ten procedures on daemon thread portals, sync-invoked; every one
// prints a line and the invocation completes only once all ten plus
// the terminal have run.
func TestHelloFanout(t *testing.T) {
	var greetings int32

	caller := concur.NewRepeatedCaller1D(10, concur.NewCallable(
		concur.ThreadPortal(true),
		concur.NewProcedure(func() {
			atomic.AddInt32(&greetings, 1)
			t.Log("Hello world!")
		}),
	))

	result := concur.SyncInvoke(func() (int32, error) {
		return atomic.LoadInt32(&greetings), nil
	}, caller)

	v, isErr := result.GetLeft()
	if isErr {
		t.Fatalf("unexpected error: %v", v)
	}
	got, _ := result.GetRight()
	if got != 10 {
		t.Fatalf("expected 10 greetings, got %d", got)
	}
	t.Log("Done.")
}
