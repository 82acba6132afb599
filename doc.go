// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heaps provides interchangeable min-priority queue engines that
// share a single contract, Queue. Three engines are provided:
//
//   - Binary, an array backed binary heap.
//   - Kary, an array backed heap with a branching factor fixed at construction.
//   - Binomial, a forest of binomial trees indexed by tree order.
//
// All engines dequeue the value with the smallest priority first. Priorities
// are compared using < only, so the relative order in which values with equal
// priorities are returned is unspecified and differs between engines; callers
// that need stable ordering must encode a sequence number into the priority.
//
// Querying an empty queue is not an error: Dequeue, Peek and PeekPriority
// return false as their second result.
//
//	q := heaps.NewBinary[string, int]()
//	q.Enqueue("a", 5)
//	q.Enqueue("b", 1)
//	v, _ := q.Dequeue() // "b"
//
// None of the engines are safe for concurrent use.
package heaps
