// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

// Procedure is user work in its canonical form: it receives the
// modifier token it was dispatched with and the callback it must
// eventually trigger (indirectly, via [Callable]'s join step), and
// returns the modifier it finishes holding. A procedure that forks
// additional work returns the modifier [Fork] handed back; with this
// package's counters that is the same modifier it was given.
type Procedure func(modifier Modifier, callback Callback) Modifier

// NewProcedure adapts a plain function with no forking needs to a
// [Procedure]: it runs f and passes its modifier through unchanged.
func NewProcedure(f func()) Procedure {
	return func(modifier Modifier, callback Callback) Modifier {
		f()
		return modifier
	}
}

// ForkCapability is handed to a [TemplateProcedure] so it can add work
// to the invocation it is running under without holding the modifier
// itself.
type ForkCapability interface {
	// Fork adds callers as additional concurrent work under the same
	// invocation. See the package-level [Fork] function.
	Fork(callers ...Caller)
}

// TemplateProcedure is the subclassing-style alternative to
// [NewProcedure]: implement Run to do work and optionally call
// fork.Fork one or more times before returning.
type TemplateProcedure interface {
	Run(fork ForkCapability)
}

// forkContext implements [ForkCapability] by threading the live
// modifier through successive Fork calls.
type forkContext struct {
	modifier Modifier
	callback Callback
}

func (c *forkContext) Fork(callers ...Caller) {
	c.modifier = Fork(c.modifier, c.callback, callers...)
}

// NewTemplateProcedure adapts a [TemplateProcedure] to a [Procedure].
func NewTemplateProcedure(tp TemplateProcedure) Procedure {
	return func(modifier Modifier, callback Callback) Modifier {
		ctx := &forkContext{modifier: modifier, callback: callback}
		tp.Run(ctx)
		return ctx.modifier
	}
}
