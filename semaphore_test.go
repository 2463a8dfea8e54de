// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur_test

import (
	"testing"
	"time"

	"code.hybscloud.com/concur"
)

func testSemaphore(t *testing.T, sem concur.BinarySemaphore) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		sem.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Wait returned before Release")
	case <-time.After(20 * time.Millisecond):
	}

	sem.Release()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Release")
	}

	// Release is idempotent.
	sem.Release()
}

func TestChannelSemaphore(t *testing.T) { testSemaphore(t, concur.NewChannelSemaphore()) }
func TestSpinSemaphore(t *testing.T)    { testSemaphore(t, concur.NewSpinSemaphore()) }
func TestCondSemaphore(t *testing.T)    { testSemaphore(t, concur.NewCondSemaphore()) }
