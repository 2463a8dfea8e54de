// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

// ConcurrentCopy copies src into dest element-by-element, spread across
// concurrency goroutines dispatched via portal, and blocks until every
// element has been copied. dest must be at least len(src) long.
//
// Grounded on example_5_application_concurrent_copy.cc, promoted here
// from a free function with hand-rolled block partitioning to a direct
// instantiation of [Caller2D]: each element is its own callable and
// Caller2D's own range partitioning spreads the work across
// concurrency goroutines.
func ConcurrentCopy[T any](dest, src []T, portal Portal, concurrency int) {
	n := len(src)
	if n == 0 {
		return
	}
	caller := NewCaller2D(portal, concurrency)
	for i := 0; i < n; i++ {
		i := i
		caller.Append(NewCallable(SerialPortal(), NewProcedure(func() {
			dest[i] = src[i]
		})))
	}
	SyncInvoke(func() (struct{}, error) { return struct{}{}, nil }, caller)
}
