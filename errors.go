// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrNoWork is returned by an invocation entry point when it is given
// callers whose combined size is zero. The data model requires the work
// count to be at least one; a zero count has no terminal transition to
// detect.
var ErrNoWork = errors.New("concur: no work items")

// ErrInvalidMaxCount is returned by [NewTreeCounterInitializer] when
// maxCount is zero.
var ErrInvalidMaxCount = errors.New("concur: maxCount must be positive")

// IsWouldBlock reports whether err is the non-blocking backpressure
// signal used by the pool portal's task queue. Re-exported from
// [code.hybscloud.com/iox] for callers that observe errors surfaced
// through this package without importing iox directly.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}
