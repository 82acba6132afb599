// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"iter"

	"cloudeng.io/algo/container/heap"
	"github.com/Talno/heaps"
)

func newEngine(name string, k int) (heaps.Queue[int, int], error) {
	switch name {
	case "binary":
		return heaps.NewBinary[int, int](), nil
	case "kary":
		return heaps.NewKary[int, int](k), nil
	case "binomial":
		return heaps.NewBinomial[int, int](), nil
	case "reference":
		return &reference{}, nil
	}
	return nil, fmt.Errorf("unknown engine %q", name)
}

type entry struct {
	value, priority int
}

func (e entry) Less(o entry) bool {
	return e.priority < o.priority
}

// reference adapts the generic heap from cloudeng.io/algo, a 0-indexed
// binary heap, to heaps.Queue so that it can be timed and verified
// alongside the other engines.
type reference struct {
	h heap.Heap[entry]
}

func (r *reference) Enqueue(v, p int) {
	r.h.Push(entry{value: v, priority: p})
}

func (r *reference) Dequeue() (int, bool) {
	if r.h.Len() == 0 {
		return 0, false
	}
	return r.h.Pop().value, true
}

func (r *reference) Peek() (int, bool) {
	if r.h.Len() == 0 {
		return 0, false
	}
	return r.h[0].value, true
}

func (r *reference) PeekPriority() (int, bool) {
	if r.h.Len() == 0 {
		return 0, false
	}
	return r.h[0].priority, true
}

func (r *reference) Clear() {
	r.h = nil
}

func (r *reference) Len() int {
	return r.h.Len()
}

func (r *reference) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for _, e := range r.h {
			if !yield(e.value, e.priority) {
				return
			}
		}
	}
}

func (r *reference) Merge(other heaps.Queue[int, int]) heaps.Queue[int, int] {
	m := &reference{h: make(heap.Heap[entry], 0, r.Len()+other.Len())}
	m.h = append(m.h, r.h...)
	for v, p := range other.All() {
		m.h = append(m.h, entry{value: v, priority: p})
	}
	m.h.Init()
	return m
}
