// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package concur

import "code.hybscloud.com/atomix"

// treeNode is one shard of a tree-sharded counter. Its count is bounded
// by maxCount to keep contention local; overflow spills into new
// children parented to whichever node was full.
type treeNode struct {
	parent *treeNode
	maxCnt uint64
	count  atomix.Uint64
}

// treeModifier is a [Modifier] over one node of a tree-sharded counter.
// Decrement walks up to the parent on every zero-transition it meets;
// only the root's zero-transition is terminal.
type treeModifier struct {
	node *treeNode
}

func (m *treeModifier) Decrement() bool {
	for {
		v := m.node.count.Add(^uint64(0))
		if v != ^uint64(0) {
			return true
		}
		parent := m.node.parent
		if parent == nil {
			return false
		}
		m.node = parent
	}
}

// Increase claims up to maxCount-current capacity on the current node
// via CAS, issuing that many tokens directly against it. Whatever
// cannot fit spills into a freshly parented chain of nodes — but since
// the calling modifier is never retargeted (see DESIGN.md's Open
// Questions for why the original's in-place self-relocation is not
// reproduced), node's own count is bumped by one extra unit whenever a
// spill happens, reserving the slot the spilled chain's own eventual
// cascade will consume.
func (m *treeModifier) Increase(k uint64) Buffer {
	if k == 0 {
		return emptyBuffer{}
	}
	node := m.node
	for {
		current := node.count.Load()
		var room uint64
		if current < node.maxCnt {
			room = node.maxCnt - current
		}
		claim := k
		if claim > room {
			claim = room
		}
		if claim == k {
			if !node.count.CompareAndSwap(current, current+claim) {
				continue
			}
			tokens := make([]Modifier, claim)
			for i := range tokens {
				tokens[i] = &treeModifier{node: node}
			}
			return newListBuffer(tokens)
		}
		if !node.count.CompareAndSwap(current, current+claim+1) {
			continue
		}
		tokens := make([]Modifier, claim)
		for i := range tokens {
			tokens[i] = &treeModifier{node: node}
		}
		return newListBuffer(append(tokens, spillTreeNodes(node, node.maxCnt, k-claim-1)...))
	}
}

// spillTreeNodes builds a chain of fresh nodes parented to parent,
// chunked by maxCount, such that decrementing every one of the n+1
// tokens it returns produces exactly one cascade into parent (or one
// terminal transition, if parent is nil).
func spillTreeNodes(parent *treeNode, maxCnt, n uint64) []Modifier {
	var tokens []Modifier
	for n > maxCnt {
		node := &treeNode{parent: parent, maxCnt: maxCnt}
		node.count.Store(maxCnt)
		for i := uint64(0); i < maxCnt; i++ {
			tokens = append(tokens, &treeModifier{node: node})
		}
		parent = node
		n -= maxCnt
	}
	node := &treeNode{parent: parent, maxCnt: maxCnt}
	node.count.Store(n)
	for i := uint64(0); i < n+1; i++ {
		tokens = append(tokens, &treeModifier{node: node})
	}
	return tokens
}

// NewTreeCounterInitializer returns a [CounterInitializer] backed by a
// tree of shards, each bounded by maxCount, to spread contention under
// heavy fan-out. maxCount must be positive.
func NewTreeCounterInitializer(maxCount uint64) (CounterInitializer, error) {
	if maxCount == 0 {
		return nil, ErrInvalidMaxCount
	}
	return func(n uint64) (Buffer, error) {
		tokens := spillTreeNodes(nil, maxCount, n)
		return newListBuffer(tokens), nil
	}, nil
}
