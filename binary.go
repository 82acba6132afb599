// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaps

import (
	"cmp"
	"iter"
)

// Binary is an array backed binary min-heap. The array is 1-indexed, ie.
// slot 0 is never used, so that the parent of slot i is i/2 and its
// children are 2i and 2i+1. The zero value is an empty heap ready to use.
type Binary[V any, P cmp.Ordered] struct {
	elems []element[V, P]
	opts  options
}

// NewBinary creates a new, empty, instance of Binary.
func NewBinary[V any, P cmp.Ordered](opts ...Option) *Binary[V, P] {
	h := &Binary[V, P]{opts: newOptions(opts)}
	h.elems = make([]element[V, P], 1, h.opts.capacity+1)
	return h
}

// Len implements Queue.
func (h *Binary[V, P]) Len() int {
	if len(h.elems) == 0 {
		return 0
	}
	return len(h.elems) - 1
}

// Enqueue implements Queue. The new element is percolated up by sliding
// its ancestors down rather than swapping at every level.
func (h *Binary[V, P]) Enqueue(v V, p P) {
	if len(h.elems) == 0 {
		h.elems = make([]element[V, P], 1, defaultCapacity+1)
	}
	h.elems = append(h.elems, element[V, P]{})
	i := len(h.elems) - 1
	for i > 1 {
		parent := i / 2
		if !(p < h.elems[parent].priority) {
			break
		}
		h.elems[i] = h.elems[parent]
		i = parent
	}
	h.elems[i] = element[V, P]{value: v, priority: p}
}

// Dequeue implements Queue.
func (h *Binary[V, P]) Dequeue() (V, bool) {
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

func (h *Binary[V, P]) down(e element[V, P]) {
	n := len(h.elems)
	i := 1
	for {
		child := 2 * i
		if child >= n {
			break
		}
		if right := child + 1; right < n && h.elems[right].priority < h.elems[child].priority {
			child = right
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
func (h *Binary[V, P]) Peek() (V, bool) {
	if h.Len() == 0 {
		var zero V
		return zero, false
	}
	return h.elems[1].value, true
}

// PeekPriority implements Queue.
func (h *Binary[V, P]) PeekPriority() (P, bool) {
	if h.Len() == 0 {
		var zero P
		return zero, false
	}
	return h.elems[1].priority, true
}

// Clear implements Queue. The existing storage is dropped rather than
// zeroed.
func (h *Binary[V, P]) Clear() {
	h.elems = make([]element[V, P], 1, h.opts.capacity+1)
}

// All implements Queue.
func (h *Binary[V, P]) All() iter.Seq2[V, P] {
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

// Merge implements Queue. The returned queue is a *Binary that is built
// by enqueuing every element of the receiver followed by every element
// of other.
func (h *Binary[V, P]) Merge(other Queue[V, P]) Queue[V, P] {
	m := &Binary[V, P]{opts: h.opts}
	m.elems = make([]element[V, P], 1, h.Len()+other.Len()+1)
	enqueueAll[V, P](m, h)
	enqueueAll[V, P](m, other)
	return m
}
