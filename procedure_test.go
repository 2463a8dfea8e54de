// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur_test

import (
	"testing"

	"code.hybscloud.com/concur"
)

func TestNewProcedurePassesModifierThrough(t *testing.T) {
	ran := false
	proc := concur.NewProcedure(func() { ran = true })

	caller := concur.NewCaller0D(concur.NewCallable(concur.SerialPortal(), proc))
	concur.SyncInvoke(func() (struct{}, error) { return struct{}{}, nil }, caller)

	if !ran {
		t.Fatal("expected wrapped function to run")
	}
}
