// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/Talno/heaps"
)

// Run enqueues the workload's priorities into each of its engines and
// then drains them, verifying that every value is returned exactly once
// and in priority order.
func Run(ctx context.Context, out io.Writer, w Workload) error {
	logger := ctxlog.Logger(ctx)
	priorities := w.Priorities()
	errs := errors.M{}
	for _, name := range w.Engines {
		if err := ctx.Err(); err != nil {
			errs.Append(err)
			break
		}
		q, err := newEngine(name, w.Branching)
		if err != nil {
			errs.Append(err)
			continue
		}
		start := time.Now()
		enqueue(q, priorities, 0)
		enqueued := time.Since(start)
		if err := checkPeek(q); err != nil {
			errs.Append(errors.Annotate(name, err))
			continue
		}
		start = time.Now()
		values, dequeued := drain(q)
		drained := time.Since(start)
		if err := verifyOrder(values, dequeued, priorities, 0, len(priorities)); err != nil {
			logger.Error("verification failed", "engine", name, "error", err)
			errs.Append(errors.Annotate(name, err))
			continue
		}
		logger.Info("run", "engine", name, "size", len(priorities), "distribution", w.Distribution, "enqueue", enqueued, "dequeue", drained)
		fmt.Fprintf(out, "%-10s n=%-8d enqueue=%-14v dequeue=%v\n", name, len(priorities), enqueued, drained)
	}
	return errs.Err()
}

// Merge splits the workload's priorities between two queues for each of
// its engines, merges them and verifies the merged queue and that both
// operands are unchanged.
func Merge(ctx context.Context, out io.Writer, w Workload) error {
	logger := ctxlog.Logger(ctx)
	priorities := w.Priorities()
	cut := int(float64(len(priorities)) * w.Split)
	errs := errors.M{}
	for _, name := range w.Engines {
		if err := ctx.Err(); err != nil {
			errs.Append(err)
			break
		}
		a, err := newEngine(name, w.Branching)
		if err != nil {
			errs.Append(err)
			continue
		}
		b, err := newEngine(name, w.Branching)
		if err != nil {
			errs.Append(err)
			continue
		}
		enqueue(a, priorities[:cut], 0)
		enqueue(b, priorities[cut:], cut)
		start := time.Now()
		m := a.Merge(b)
		merged := time.Since(start)
		if err := verifyMerge(a, b, m, priorities, cut); err != nil {
			logger.Error("verification failed", "engine", name, "error", err)
			errs.Append(errors.Annotate(name, err))
			continue
		}
		logger.Info("merge", "engine", name, "sizes", []int{cut, len(priorities) - cut}, "merge", merged)
		fmt.Fprintf(out, "%-10s n=%-8d split=%-8d merge=%v\n", name, len(priorities), cut, merged)
	}
	return errs.Err()
}

func enqueue(q heaps.Queue[int, int], priorities []int, offset int) {
	for i, p := range priorities {
		q.Enqueue(offset+i, p)
	}
}

func drain(q heaps.Queue[int, int]) (values, priorities []int) {
	values = make([]int, 0, q.Len())
	priorities = make([]int, 0, q.Len())
	for {
		p, ok := q.PeekPriority()
		if !ok {
			return
		}
		v, _ := q.Dequeue()
		values = append(values, v)
		priorities = append(priorities, p)
	}
}

func checkPeek(q heaps.Queue[int, int]) error {
	v0, ok0 := q.Peek()
	p0, _ := q.PeekPriority()
	for i := 0; i < 3; i++ {
		v, ok := q.Peek()
		p, _ := q.PeekPriority()
		if v != v0 || p != p0 || ok != ok0 {
			return fmt.Errorf("peek is not idempotent: %v/%v then %v/%v", v0, p0, v, p)
		}
	}
	return nil
}

// verifyOrder checks that values holds every value in [lo, hi) exactly
// once, that dequeued is non-decreasing and that each value was returned
// with its original priority.
func verifyOrder(values, dequeued, priorities []int, lo, hi int) error {
	if got, want := len(values), hi-lo; got != want {
		return fmt.Errorf("dequeued %v values, want %v", got, want)
	}
	seen := make([]bool, hi-lo)
	for i, v := range values {
		if v < lo || v >= hi {
			return fmt.Errorf("unexpected value %v", v)
		}
		if seen[v-lo] {
			return fmt.Errorf("value %v dequeued more than once", v)
		}
		seen[v-lo] = true
		if got, want := dequeued[i], priorities[v]; got != want {
			return fmt.Errorf("value %v dequeued with priority %v, want %v", v, got, want)
		}
		if i > 0 && dequeued[i] < dequeued[i-1] {
			return fmt.Errorf("dequeue %v: priority %v follows %v", i, dequeued[i], dequeued[i-1])
		}
	}
	return nil
}

func verifyMerge(a, b, m heaps.Queue[int, int], priorities []int, cut int) error {
	if got, want := m.Len(), a.Len()+b.Len(); got != want {
		return fmt.Errorf("merged length %v, want %v", got, want)
	}
	values, dequeued := drain(m)
	if err := verifyOrder(values, dequeued, priorities, 0, len(priorities)); err != nil {
		return fmt.Errorf("merged queue: %w", err)
	}
	if got, want := a.Len(), cut; got != want {
		return fmt.Errorf("first operand length %v, want %v", got, want)
	}
	if got, want := b.Len(), len(priorities)-cut; got != want {
		return fmt.Errorf("second operand length %v, want %v", got, want)
	}
	values, dequeued = drain(a)
	if err := verifyOrder(values, dequeued, priorities, 0, cut); err != nil {
		return fmt.Errorf("first operand: %w", err)
	}
	values, dequeued = drain(b)
	if err := verifyOrder(values, dequeued, priorities, cut, len(priorities)); err != nil {
		return fmt.Errorf("second operand: %w", err)
	}
	return nil
}
