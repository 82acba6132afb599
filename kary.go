// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaps

import (
	"cmp"
	"fmt"
	"iter"
)

// DefaultBranching is the branching factor used by NewKary when it is
// called with a branching factor of zero.
const DefaultBranching = 7

// Kary is an array backed min-heap in which every node has up to k
// children. As for Binary the array is 1-indexed, so that the children
// of slot p occupy slots (p-1)*k+2 through p*k+1 and the parent of slot
// c > 1 is (c-2)/k+1. A larger k reduces the height of the heap, and hence
// the cost of Enqueue, at the expense of scanning more children in
// Dequeue. The zero value is an empty heap with DefaultBranching.
type Kary[V any, P cmp.Ordered] struct {
	k     int
	elems []element[V, P]
	opts  options
}

// NewKary creates a new, empty, instance of Kary with branching factor k.
// A k of 0 selects DefaultBranching, any other value less than 2 will
// panic.
func NewKary[V any, P cmp.Ordered](k int, opts ...Option) *Kary[V, P] {
	if k == 0 {
		k = DefaultBranching
	}
	if k < 2 {
		panic(fmt.Sprintf("heaps: branching factor must be at least 2: %v", k))
	}
	h := &Kary[V, P]{k: k, opts: newOptions(opts)}
	h.elems = make([]element[V, P], 1, h.opts.capacity+1)
	return h
}

// karyParent and karyFirstChild never overflow for slots that exist,
// whatever the value of k. karyParent is only defined for c > 1.
func karyParent(c, k int) int {
	return (c-2)/k + 1
}

func karyFirstChild(p, k int) int {
	return (p-1)*k + 2
}

// Branching returns the branching factor of the heap.
func (h *Kary[V, P]) Branching() int {
	if h.k == 0 {
		return DefaultBranching
	}
	return h.k
}

// Len implements Queue.
func (h *Kary[V, P]) Len() int {
	if len(h.elems) == 0 {
		return 0
	}
	return len(h.elems) - 1
}

// Enqueue implements Queue.
func (h *Kary[V, P]) Enqueue(v V, p P) {
	if len(h.elems) == 0 {
		h.k = h.Branching()
		h.elems = make([]element[V, P], 1, defaultCapacity+1)
	}
	h.elems = append(h.elems, element[V, P]{})
	i := len(h.elems) - 1
	for i > 1 {
		parent := karyParent(i, h.k)
		if !(p < h.elems[parent].priority) {
			break
		}
		h.elems[i] = h.elems[parent]
		i = parent
	}
	h.elems[i] = element[V, P]{value: v, priority: p}
}

// Dequeue implements Queue.
func (h *Kary[V, P]) Dequeue() (V, bool) {
	if h.Len() == 0 {
		var zero V
		return zero, false
	}
	top := h.elems[1]
	last := len(h.elems) - 1
	stranded := h.elems[last]
	h.elems[last] = element[V, P]{}
	h.elems = h.elems[:last]
	if last > 1 {
		h.down(stranded)
	}
	return top.value, true
}

func (h *Kary[V, P]) down(e element[V, P]) {
	n := len(h.elems)
	i := 1
	for {
		if i-1 > (n-2)/h.k {
			break
		}
		first := karyFirstChild(i, h.k)
		if first >= n {
			break
		}
		end := first + min(h.k, n-first)
		child := first
		for j := first + 1; j < end; j++ {
			if h.elems[j].priority < h.elems[child].priority {
				child = j
			}
		}
		if !(h.elems[child].priority < e.priority) {
			break
		}
		h.elems[i] = h.elems[child]
		i = child
	}
	h.elems[i] = e
}

// Peek implements Queue.
func (h *Kary[V, P]) Peek() (V, bool) {
	if h.Len() == 0 {
		var zero V
		return zero, false
	}
	return h.elems[1].value, true
}

// PeekPriority implements Queue.
func (h *Kary[V, P]) PeekPriority() (P, bool) {
	if h.Len() == 0 {
		var zero P
		return zero, false
	}
	return h.elems[1].priority, true
}

// Clear implements Queue.
func (h *Kary[V, P]) Clear() {
	h.elems = make([]element[V, P], 1, h.opts.capacity+1)
}

// All implements Queue.
func (h *Kary[V, P]) All() iter.Seq2[V, P] {
	return func(yield func(V, P) bool) {
		if h.Len() == 0 {
			return
		}
		for _, e := range h.elems[1:] {
			if !yield(e.value, e.priority) {
				return
			}
		}
	}
}

// Merge implements Queue. The returned queue is a *Kary with the same
// branching factor as the receiver.
func (h *Kary[V, P]) Merge(other Queue[V, P]) Queue[V, P] {
	m := &Kary[V, P]{k: h.Branching(), opts: h.opts}
	m.elems = make([]element[V, P], 1, h.Len()+other.Len()+1)
	enqueueAll[V, P](m, h)
	enqueueAll[V, P](m, other)
	return m
}
