// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

// Fork adds callers as additional concurrent work under a live
// invocation, from inside a running [Procedure]. It claims
// CountCall(callers) fresh tokens from modifier, dispatching every
// callable with one of them, and returns modifier unchanged: neither
// counter implementation in this package consumes or relocates the
// calling modifier's own unit when Increase allocates new tokens, so
// there is nothing to fetch back.
//
// A procedure that forks must return Fork's result in place of the
// modifier it received.
func Fork(modifier Modifier, callback Callback, callers ...Caller) Modifier {
	buffer := modifier.Increase(CountCall(callers...))
	for _, c := range callers {
		c.Call(buffer, callback)
	}
	return modifier
}
