// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import "code.hybscloud.com/kont"

// CountCall sums the Size of every caller, the total number of
// modifier tokens an invocation over callers will need.
func CountCall(callers ...Caller) uint64 {
	var n uint64
	for _, c := range callers {
		n += uint64(c.Size())
	}
	return n
}

// AsyncInvokeExplicit dispatches every callable across callers using a
// counter built by initializer, firing callback exactly once, on
// whichever goroutine observes the terminal transition, after every
// callable has joined. It returns immediately; it does not wait for
// callback to fire.
//
// AsyncInvokeExplicit returns [ErrNoWork] if callers carry no work at
// all, and otherwise propagates any error returned by initializer
// itself (for example a tree counter's node allocation failing is not
// possible today, but the signature leaves room for future counter
// implementations that can fail).
func AsyncInvokeExplicit(initializer CounterInitializer, callback Callback, callers ...Caller) error {
	total := CountCall(callers...)
	if total == 0 {
		return ErrNoWork
	}
	buffer, err := initializer(total - 1)
	if err != nil {
		return err
	}
	for _, c := range callers {
		c.Call(buffer, callback)
	}
	return nil
}

// AsyncInvoke is [AsyncInvokeExplicit] with the default flat counter
// ([NewFlatCounterInitializer]).
func AsyncInvoke(callback Callback, callers ...Caller) error {
	return AsyncInvokeExplicit(NewFlatCounterInitializer(), callback, callers...)
}

// SyncInvokeExplicit runs callers to completion using initializer and
// semaphore, then calls runnable and wraps its result as
// [kont.Either]: a non-nil error maps to [kont.Left], otherwise the
// value maps to [kont.Right]. The calling goroutine blocks on
// semaphore.Wait until every callable has joined.
func SyncInvokeExplicit[T any](initializer CounterInitializer, semaphore BinarySemaphore, runnable func() (T, error), callers ...Caller) kont.Either[error, T] {
	if err := AsyncInvokeExplicit(initializer, semaphore.Release, callers...); err != nil {
		return kont.Left[error, T](err)
	}
	semaphore.Wait()
	v, err := runnable()
	if err != nil {
		return kont.Left[error, T](err)
	}
	return kont.Right[error, T](v)
}

// SyncInvoke is [SyncInvokeExplicit] with the default flat counter
// ([NewFlatCounterInitializer]) and the default disposable semaphore
// ([NewChannelSemaphore]).
func SyncInvoke[T any](runnable func() (T, error), callers ...Caller) kont.Either[error, T] {
	return SyncInvokeExplicit(NewFlatCounterInitializer(), NewChannelSemaphore(), runnable, callers...)
}
