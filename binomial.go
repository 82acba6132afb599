// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaps

import (
	"cmp"
	"iter"
)

type binomialNode[V any, P cmp.Ordered] struct {
	value    V
	priority P
	children []*binomialNode[V, P] // children[i] is a tree of order i.
	size     int                   // number of nodes in this tree.
}

func (n *binomialNode[V, P]) order() int {
	return len(n.children)
}

// link combines two trees of the same order into a single tree of the
// next order. The carried tree is absorbed by the existing one only if
// the existing root has a strictly smaller priority.
func link[V any, P cmp.Ordered](existing, carried *binomialNode[V, P]) *binomialNode[V, P] {
	if existing.priority < carried.priority {
		existing.adopt(carried)
		return existing
	}
	carried.adopt(existing)
	return carried
}

func (n *binomialNode[V, P]) adopt(child *binomialNode[V, P]) {
	n.children = append(n.children, child)
	n.size += child.size
}

func (n *binomialNode[V, P]) clone() *binomialNode[V, P] {
	c := &binomialNode[V, P]{
		value:    n.value,
		priority: n.priority,
		size:     n.size,
	}
	if len(n.children) > 0 {
		c.children = make([]*binomialNode[V, P], len(n.children))
		for i, child := range n.children {
			c.children[i] = child.clone()
		}
	}
	return c
}

func (n *binomialNode[V, P]) walk(yield func(V, P) bool) bool {
	if !yield(n.value, n.priority) {
		return false
	}
	for _, child := range n.children {
		if !child.walk(yield) {
			return false
		}
	}
	return true
}

// Binomial is a binomial heap, that is, a forest of heap ordered binomial
// trees with at most one tree of any given order. The forest is stored as
// a slice indexed by order so that adding a tree is analogous to binary
// addition: a tree placed in an occupied slot is linked with the tree
// already there and the result carried into the next slot.
//
// Merge copies the trees of both operands so that the merged heap never
// shares nodes with either of them. The zero value is an empty heap
// ready to use.
type Binomial[V any, P cmp.Ordered] struct {
	forest []*binomialNode[V, P]
	size   int
	opts   options
}

// NewBinomial creates a new, empty, instance of Binomial.
func NewBinomial[V any, P cmp.Ordered](opts ...Option) *Binomial[V, P] {
	h := &Binomial[V, P]{opts: newOptions(opts)}
	h.forest = make([]*binomialNode[V, P], h.opts.orderCapacity)
	return h
}

// Len implements Queue.
func (h *Binomial[V, P]) Len() int {
	return h.size
}

// Orders returns the number of tree orders the forest can currently hold
// without growing.
func (h *Binomial[V, P]) Orders() int {
	return len(h.forest)
}

// Enqueue implements Queue.
func (h *Binomial[V, P]) Enqueue(v V, p P) {
	h.size++
	h.insert(&binomialNode[V, P]{value: v, priority: p, size: 1}, 0)
}

// insert places tree, of the given order, into the forest, carrying
// into successively higher orders until an empty slot is found.
func (h *Binomial[V, P]) insert(tree *binomialNode[V, P], order int) {
	for {
		if order >= len(h.forest) {
			h.grow(order)
		}
		existing := h.forest[order]
		if existing == nil {
			h.forest[order] = tree
			return
		}
		h.forest[order] = nil
		tree = link(existing, tree)
		order++
	}
}

func (h *Binomial[V, P]) grow(order int) {
	n := max(len(h.forest), 1)
	for n <= order {
		n *= 2
	}
	forest := make([]*binomialNode[V, P], n)
	copy(forest, h.forest)
	h.forest = forest
}

// findMin returns the order of the tree with the smallest root priority,
// the lowest order wins for equal priorities. It returns -1 for an empty
// forest.
func (h *Binomial[V, P]) findMin() int {
	idx := -1
	for i, tree := range h.forest {
		if tree == nil {
			continue
		}
		if idx < 0 || tree.priority < h.forest[idx].priority {
			idx = i
		}
	}
	return idx
}

// Dequeue implements Queue. The children of the removed root are
// reinserted starting at the slot corresponding to their own order.
func (h *Binomial[V, P]) Dequeue() (V, bool) {
	idx := h.findMin()
	if h.size == 0 || idx < 0 {
		var zero V
		return zero, false
	}
	root := h.forest[idx]
	h.forest[idx] = nil
	h.size--
	for order, child := range root.children {
		h.insert(child, order)
	}
	return root.value, true
}

// Peek implements Queue.
func (h *Binomial[V, P]) Peek() (V, bool) {
	idx := h.findMin()
	if h.size == 0 || idx < 0 {
		var zero V
		return zero, false
	}
	return h.forest[idx].value, true
}

// PeekPriority implements Queue.
func (h *Binomial[V, P]) PeekPriority() (P, bool) {
	idx := h.findMin()
	if h.size == 0 || idx < 0 {
		var zero P
		return zero, false
	}
	return h.forest[idx].priority, true
}

// Clear implements Queue.
func (h *Binomial[V, P]) Clear() {
	h.forest = make([]*binomialNode[V, P], h.opts.orderCapacity)
	h.size = 0
}

// All implements Queue. Trees are visited in increasing order and each
// tree in pre-order.
func (h *Binomial[V, P]) All() iter.Seq2[V, P] {
	return func(yield func(V, P) bool) {
		for _, tree := range h.forest {
			if tree != nil && !tree.walk(yield) {
				return
			}
		}
	}
}

// Merge implements Queue. The returned queue is a *Binomial. If other is
// also a *Binomial then copies of the trees from both heaps are inserted,
// in increasing order, into the new heap, otherwise the values from other
// are enqueued one at a time.
func (h *Binomial[V, P]) Merge(other Queue[V, P]) Queue[V, P] {
	ob, ok := other.(*Binomial[V, P])
	orders := len(h.forest)
	if ok {
		orders = max(orders, len(ob.forest))
	}
	m := &Binomial[V, P]{opts: h.opts}
	m.forest = make([]*binomialNode[V, P], orders)
	m.insertForest(h.forest)
	if ok {
		m.insertForest(ob.forest)
		return m
	}
	enqueueAll[V, P](m, other)
	return m
}

func (h *Binomial[V, P]) insertForest(forest []*binomialNode[V, P]) {
	for order, tree := range forest {
		if tree == nil {
			continue
		}
		h.size += tree.size
		h.insert(tree.clone(), order)
	}
}
