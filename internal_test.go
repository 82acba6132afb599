// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaps

import (
	"cmp"
	"testing"
)

func KaryParent(c, k int) int {
	return karyParent(c, k)
}

func KaryFirstChild(p, k int) int {
	return karyFirstChild(p, k)
}

func (h *Binary[V, P]) Verify(t *testing.T) {
	t.Helper()
	for i := 2; i < len(h.elems); i++ {
		if p := i / 2; h.elems[i].priority < h.elems[p].priority {
			t.Errorf("binary heap inconsistent: [%v] %v < parent [%v] %v", i, h.elems[i].priority, p, h.elems[p].priority)
			return
		}
	}
}

func (h *Kary[V, P]) Verify(t *testing.T) {
	t.Helper()
	for i := 2; i < len(h.elems); i++ {
		if p := karyParent(i, h.k); h.elems[i].priority < h.elems[p].priority {
			t.Errorf("%v-ary heap inconsistent: [%v] %v < parent [%v] %v", h.k, i, h.elems[i].priority, p, h.elems[p].priority)
			return
		}
	}
}

func (h *Binomial[V, P]) Verify(t *testing.T) {
	t.Helper()
	total := 0
	for order, tree := range h.forest {
		if tree == nil {
			continue
		}
		if got, want := tree.order(), order; got != want {
			t.Errorf("binomial heap inconsistent: tree in slot %v has order %v", want, got)
			return
		}
		if !verifyTree(t, tree) {
			return
		}
		total += tree.size
	}
	if got, want := total, h.size; got != want {
		t.Errorf("binomial heap inconsistent: forest holds %v nodes, size is %v", got, want)
	}
}

func verifyTree[V any, P cmp.Ordered](t *testing.T, n *binomialNode[V, P]) bool {
	t.Helper()
	if got, want := n.size, 1<<n.order(); got != want {
		t.Errorf("binomial tree of order %v has %v nodes, want %v", n.order(), got, want)
		return false
	}
	for i, child := range n.children {
		if got, want := child.order(), i; got != want {
			t.Errorf("child %v of %v has order %v", i, n.priority, got)
			return false
		}
		if child.priority < n.priority {
			t.Errorf("binomial tree not heap ordered: child %v < parent %v", child.priority, n.priority)
			return false
		}
		if !verifyTree(t, child) {
			return false
		}
	}
	return true
}

// SharesNodes returns true if any node reachable from h is also reachable
// from other.
func (h *Binomial[V, P]) SharesNodes(other *Binomial[V, P]) bool {
	seen := map[*binomialNode[V, P]]bool{}
	var mark func(n *binomialNode[V, P])
	mark = func(n *binomialNode[V, P]) {
		seen[n] = true
		for _, c := range n.children {
			mark(c)
		}
	}
	for _, tree := range h.forest {
		if tree != nil {
			mark(tree)
		}
	}
	var found func(n *binomialNode[V, P]) bool
	found = func(n *binomialNode[V, P]) bool {
		if seen[n] {
			return true
		}
		for _, c := range n.children {
			if found(c) {
				return true
			}
		}
		return false
	}
	for _, tree := range other.forest {
		if tree != nil && found(tree) {
			return true
		}
	}
	return false
}

// Occupied returns the orders of the trees in the forest.
func (h *Binomial[V, P]) Occupied() []int {
	var orders []int
	for i, tree := range h.forest {
		if tree != nil {
			orders = append(orders, i)
		}
	}
	return orders
}
