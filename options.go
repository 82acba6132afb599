// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaps

const (
	defaultCapacity      = 10
	defaultOrderCapacity = 5
)

type options struct {
	capacity      int
	orderCapacity int
}

// Option represents the options that can be passed to NewBinary, NewKary
// and NewBinomial.
type Option func(*options)

// WithCapacity sets the initial capacity of the slice used to hold the
// values of the array backed engines, Binary and Kary. It is ignored
// by Binomial.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithOrderCapacity sets the initial number of tree orders that a Binomial
// heap can hold before its forest must grow, a forest with n orders can
// hold up to 2^n - 1 values. It is ignored by Binary and Kary.
func WithOrderCapacity(n int) Option {
	return func(o *options) {
		o.orderCapacity = n
	}
}

func newOptions(opts []Option) options {
	o := options{
		capacity:      defaultCapacity,
		orderCapacity: defaultOrderCapacity,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.capacity < 1 {
		o.capacity = defaultCapacity
	}
	if o.orderCapacity < 1 {
		o.orderCapacity = defaultOrderCapacity
	}
	return o
}
