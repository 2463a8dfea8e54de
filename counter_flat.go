// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import "code.hybscloud.com/atomix"

// flatCounter is a single atomic word shared by every modifier token
// issued against it. Cheap to pass around, contended under heavy
// fan-out — see counter_tree.go for the sharded alternative.
type flatCounter struct {
	n atomix.Uint64
}

// flatModifier is a [Modifier] over a [flatCounter]. Every copy of a
// flatModifier for the same counter is interchangeable, so the buffer
// that issues them just hands out the same value repeatedly.
type flatModifier struct {
	c *flatCounter
}

// Decrement subtracts one via a wrapping add of ^uint64(0), the
// unsigned equivalent of fetch_sub(1). The counter transitions to
// terminal exactly when the pre-subtraction value was zero, which shows
// up here as the post-subtraction value wrapping to ^uint64(0).
func (m flatModifier) Decrement() bool {
	return m.c.n.Add(^uint64(0)) != ^uint64(0)
}

// Increase adds k to the shared word and returns k copies of the same
// modifier; all of them still refer to the one counter.
func (m flatModifier) Increase(k uint64) Buffer {
	if k == 0 {
		return emptyBuffer{}
	}
	m.c.n.Add(k)
	return singleBuffer{m: m}
}

// NewFlatCounterInitializer returns a [CounterInitializer] backed by a
// single atomic word. This is the default counter used by [AsyncInvoke]
// and [SyncInvoke].
func NewFlatCounterInitializer() CounterInitializer {
	return func(n uint64) (Buffer, error) {
		c := &flatCounter{}
		c.n.Store(n)
		return singleBuffer{m: flatModifier{c: c}}, nil
	}
}
