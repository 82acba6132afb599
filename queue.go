// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaps

import (
	"cmp"
	"iter"
)

// Queue represents the operations shared by all of the priority queue
// engines in this package. The value with the smallest priority is always
// at the front of the queue.
type Queue[V any, P cmp.Ordered] interface {
	// Enqueue adds v to the queue with priority p.
	Enqueue(v V, p P)
	// Dequeue removes and returns the value with the smallest priority,
	// it returns false if the queue is empty.
	Dequeue() (V, bool)
	// Peek returns the value with the smallest priority without removing
	// it, it returns false if the queue is empty.
	Peek() (V, bool)
	// PeekPriority returns the smallest priority in the queue, it returns
	// false if the queue is empty.
	PeekPriority() (P, bool)
	// Clear empties the queue.
	Clear()
	// Len returns the number of values in the queue.
	Len() int
	// Merge returns a new queue, of the same kind as the receiver, that
	// contains all of the values in both the receiver and other. Neither
	// the receiver nor other are modified.
	Merge(other Queue[V, P]) Queue[V, P]
	// All returns an iterator over the values and priorities in the
	// queue in storage order, which is not priority order.
	All() iter.Seq2[V, P]
}

var (
	_ Queue[string, int] = (*Binary[string, int])(nil)
	_ Queue[string, int] = (*Kary[string, int])(nil)
	_ Queue[string, int] = (*Binomial[string, int])(nil)
)

type element[V any, P cmp.Ordered] struct {
	value    V
	priority P
}

func enqueueAll[V any, P cmp.Ordered](dst, src Queue[V, P]) {
	for v, p := range src.All() {
		dst.Enqueue(v, p)
	}
}
