// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaps_test

import (
	"slices"
	"testing"

	"github.com/Talno/heaps"
)

func TestBinaryScenario(t *testing.T) {
	h := heaps.NewBinary[string, int]()
	h.Enqueue("a", 5)
	h.Enqueue("b", 1)
	h.Enqueue("c", 3)
	h.Verify(t)

	v, ok := h.Peek()
	if !ok || v != "b" {
		t.Errorf("got %v, %v, want b, true", v, ok)
	}
	p, ok := h.PeekPriority()
	if !ok || p != 1 {
		t.Errorf("got %v, %v, want 1, true", p, ok)
	}
	var out []string
	for h.Len() > 0 {
		v, _ := h.Dequeue()
		h.Verify(t)
		out = append(out, v)
	}
	if got, want := out, []string{"b", "c", "a"}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBinaryZeroValue(t *testing.T) {
	var h heaps.Binary[int, int]
	if got, want := h.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := h.Dequeue(); ok {
		t.Errorf("Dequeue on zero value succeeded")
	}
	for i := 10; i > 0; i-- {
		h.Enqueue(i, i)
	}
	h.Verify(t)
	_, priorities := drain(t, &h)
	if got, want := priorities, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	h.Clear()
	h.Enqueue(1, 1)
	if got, want := h.Len(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestBinaryGrowth(t *testing.T) {
	h := heaps.NewBinary[int, int](heaps.WithCapacity(2))
	input := descending(1000)
	for i, p := range input {
		h.Enqueue(i, p)
		if got, want := h.Len(), i+1; got != want {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	h.Verify(t)
	if p, _ := h.PeekPriority(); p != 0 {
		t.Errorf("got %v, want 0", p)
	}
}
