// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaps_test

import (
	"math/rand"
	"testing"

	"cloudeng.io/algo/container/heap"
	"github.com/Talno/heaps"
)

func zipfRand(seed int64, n int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	gen := rand.NewZipf(rnd, 3.0, 1.1, 1<<30)
	r := make([]int, n)
	for i := range r {
		r[i] = int(gen.Uint64())
	}
	return r
}

const benchSize = 10000

func benchmarkQueue(b *testing.B, data []int, q heaps.Queue[int, int]) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for j, p := range data {
			q.Enqueue(j, p)
		}
		for q.Len() > 0 {
			q.Dequeue()
		}
	}
}

func BenchmarkEngines(b *testing.B) {
	for _, dist := range []struct {
		name string
		data []int
	}{
		{"uniform", uniformRand(1, benchSize, 1<<30)},
		{"zipf", zipfRand(1, benchSize)},
		{"descending", descending(benchSize)},
	} {
		for _, e := range allEngines() {
			b.Run(dist.name+"/"+e.name, func(b *testing.B) {
				benchmarkQueue(b, dist.data, e.new())
			})
		}
		b.Run(dist.name+"/reference", func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var h heap.Heap[item]
				for j, p := range dist.data {
					h.Push(item{priority: p, value: j})
				}
				for h.Len() > 0 {
					h.Pop()
				}
			}
		})
	}
}

func BenchmarkMerge(b *testing.B) {
	data := uniformRand(2, benchSize, 1<<30)
	for _, e := range allEngines() {
		b.Run(e.name, func(b *testing.B) {
			x, y := e.new(), e.new()
			for j, p := range data {
				if j%2 == 0 {
					x.Enqueue(j, p)
				} else {
					y.Enqueue(j, p)
				}
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				x.Merge(y)
			}
		})
	}
}
