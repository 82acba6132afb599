// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaps_test

import (
	"fmt"
	"strings"

	"github.com/Talno/heaps"
)

func ExampleNewBinary() {
	q := heaps.NewBinary[string, int]()
	q.Enqueue("a", 5)
	q.Enqueue("b", 1)
	q.Enqueue("c", 3)
	v, _ := q.Peek()
	p, _ := q.PeekPriority()
	fmt.Printf("peek: %v %v\n", v, p)
	var order []string
	for q.Len() > 0 {
		v, _ := q.Dequeue()
		order = append(order, v)
	}
	fmt.Println(strings.Join(order, " "))
	_, ok := q.Dequeue()
	fmt.Println(ok)
	// Output:
	// peek: b 1
	// b c a
	// false
}

func ExampleNewKary() {
	q := heaps.NewKary[string, int](3)
	for _, p := range []int{10, 2, 8, 1, 6} {
		q.Enqueue(fmt.Sprintf("v%v", p), p)
	}
	var order []string
	for q.Len() > 0 {
		p, _ := q.PeekPriority()
		q.Dequeue()
		order = append(order, fmt.Sprint(p))
	}
	fmt.Println(strings.Join(order, " "))
	// Output:
	// 1 2 6 8 10
}

func ExampleBinomial_Merge() {
	a := heaps.NewBinomial[string, int]()
	for _, p := range []int{4, 2, 7, 1} {
		a.Enqueue(fmt.Sprintf("a%v", p), p)
	}
	b := heaps.NewBinomial[string, int]()
	for _, p := range []int{3, 9} {
		b.Enqueue(fmt.Sprintf("b%v", p), p)
	}
	m := a.Merge(b)
	fmt.Println(m.Len(), a.Len(), b.Len())
	var order []string
	for m.Len() > 0 {
		v, _ := m.Dequeue()
		order = append(order, v)
	}
	fmt.Println(strings.Join(order, " "))
	// Output:
	// 6 4 2
	// a1 a2 b3 a4 a7 b9
}
