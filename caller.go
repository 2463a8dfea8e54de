// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

// Caller bundles a known number of [Callable]s and dispatches each of
// them with its own token fetched from a shared [Buffer].
type Caller interface {
	// Size reports how many modifier tokens Call will fetch.
	Size() int

	// Call fetches Size tokens from buffer, one per callable, and
	// invokes each callable with its token and the shared callback.
	Call(buffer Buffer, callback Callback)
}

// caller0D wraps a single callable. Grounded on the original's
// ConcurrentCaller0D: the simplest caller, always size 1.
type caller0D struct {
	callable Callable
}

// NewCaller0D returns a [Caller] wrapping a single callable.
func NewCaller0D(callable Callable) Caller {
	return caller0D{callable: callable}
}

func (c caller0D) Size() int { return 1 }

func (c caller0D) Call(buffer Buffer, callback Callback) {
	c.callable.Invoke(buffer.Fetch(), callback)
}

// Caller1D is a growable, ordered list of callables, each dispatched
// with its own token. Grounded on the original's ConcurrentCaller1D.
type Caller1D struct {
	callables []Callable
}

// NewCaller1D returns an empty [Caller1D].
func NewCaller1D() *Caller1D {
	return &Caller1D{}
}

// Append adds callable to the end of the caller's list.
func (c *Caller1D) Append(callable Callable) {
	c.callables = append(c.callables, callable)
}

func (c *Caller1D) Size() int { return len(c.callables) }

func (c *Caller1D) Call(buffer Buffer, callback Callback) {
	for _, callable := range c.callables {
		callable.Invoke(buffer.Fetch(), callback)
	}
}

// NewRepeatedCaller1D returns a [Caller1D] holding count copies of the
// same callable, the Go analog of the original's count-based
// make_concurrent_caller overload.
func NewRepeatedCaller1D(count int, callable Callable) *Caller1D {
	c := &Caller1D{callables: make([]Callable, count)}
	for i := range c.callables {
		c.callables[i] = callable
	}
	return c
}

// Caller2D partitions a list of callables into concurrency contiguous
// ranges and drives each range from its own outer callable dispatched
// on portal, blocking until every range completes before Call
// returns. Grounded on the original's ConcurrentCaller2D, which uses
// this shape to parallelize a flat list of per-index work over a
// fixed worker count rather than one goroutine per index. See
// [ConcurrentCopy] for a concrete use.
type Caller2D struct {
	portal      Portal
	concurrency int
	callables   []Callable
}

// NewCaller2D returns an empty [Caller2D] that will later partition
// its callables across concurrency ranges, each range's callables
// invoked in sequence on a goroutine dispatched via portal.
//
// portal must not be a single-worker [NewThreadPoolPortal]: Call blocks
// on a nested [SyncInvoke] waiting for every range to finish, and a
// pool with no free worker beyond the one already running Call can
// never schedule those ranges, deadlocking the invocation. Use a
// [ThreadPortal] or a pool sized at least concurrency+1 instead.
func NewCaller2D(portal Portal, concurrency int) *Caller2D {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Caller2D{portal: portal, concurrency: concurrency}
}

// Append adds callable to the end of the caller's list.
func (c *Caller2D) Append(callable Callable) {
	c.callables = append(c.callables, callable)
}

func (c *Caller2D) Size() int { return len(c.callables) }

func (c *Caller2D) Call(buffer Buffer, callback Callback) {
	n := len(c.callables)
	if n == 0 {
		return
	}
	modifiers := make([]Modifier, n)
	for i := range modifiers {
		modifiers[i] = buffer.Fetch()
	}

	concurrency := c.concurrency
	if concurrency > n {
		concurrency = n
	}

	inner := NewCaller1D()
	for _, r := range partitionRanges(n, concurrency) {
		first, last := r[0], r[1]
		inner.Append(NewCallable(c.portal, NewProcedure(func() {
			for i := first; i < last; i++ {
				c.callables[i].Invoke(modifiers[i], callback)
			}
		})))
	}
	SyncInvoke(func() (struct{}, error) { return struct{}{}, nil }, inner)
}

// partitionRanges splits [0, n) into concurrency contiguous ranges as
// evenly as possible, with any remainder distributed one-per-range
// starting from the first range.
func partitionRanges(n, concurrency int) [][2]int {
	ranges := make([][2]int, 0, concurrency)
	remainder := n % concurrency
	chunk := n / concurrency
	first := 0
	for i := 0; i < concurrency; i++ {
		size := chunk
		if i < remainder {
			size++
		}
		ranges = append(ranges, [2]int{first, first + size})
		first += size
	}
	return ranges
}
