// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

// Callback is the completion signal fired exactly once, on the terminal
// transition of an invocation's counter. It must be safe to invoke on
// any goroutine.
type Callback func()

// Modifier is a handle onto the atomic counter, shared by the library
// and exactly one outstanding work item. Decrement consumes it. Increase
// splits it into k fresh tokens while leaving the caller's own token
// live.
type Modifier interface {
	// Decrement reports whether more work remains outstanding after this
	// call. False means this call observed the terminal transition.
	Decrement() bool

	// Increase atomically adds k to the outstanding count and returns a
	// [Buffer] of k fresh modifier tokens. k == 0 returns an empty buffer
	// and leaves the counter unchanged.
	Increase(k uint64) Buffer
}

// Buffer is a finite, one-shot, order-irrelevant stream of modifier
// tokens. Fetching more than the advertised count is a programmer
// contract violation and is not attempted by this package.
type Buffer interface {
	Fetch() Modifier
}

// CounterInitializer produces the initial [Buffer] for an invocation.
// initializer(n) yields n+1 modifier tokens, with the counter's internal
// state arranged so that exactly n+1 decrements are needed to observe
// the terminal transition. Invocation entry points call it with
// (total work items - 1), so the buffer holds exactly one token per
// work item.
type CounterInitializer func(n uint64) (Buffer, error)

// emptyBuffer is returned by Increase(0); fetching from it is a
// programmer contract violation, same as over-fetching any other buffer.
type emptyBuffer struct{}

func (emptyBuffer) Fetch() Modifier { panic("concur: fetch from empty buffer") }

// listBuffer serves a fixed slice of already-constructed modifiers.
type listBuffer struct {
	tokens []Modifier
	next   int
}

func newListBuffer(tokens []Modifier) Buffer {
	if len(tokens) == 0 {
		return emptyBuffer{}
	}
	return &listBuffer{tokens: tokens}
}

func (b *listBuffer) Fetch() Modifier {
	m := b.tokens[b.next]
	b.next++
	return m
}

// singleBuffer hands out the same modifier on every fetch. This is
// correct whenever every token shares one underlying atomic word (the
// flat counter): which physical token object a work item holds does not
// matter, only how many times decrement/increase are collectively
// called on the shared word.
type singleBuffer struct{ m Modifier }

func (b singleBuffer) Fetch() Modifier { return b.m }
