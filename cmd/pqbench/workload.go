// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// Workload describes the priorities to be generated and the engines that
// they are to be run against. It may be read from a yaml file, eg:
//
//	engines: [binary, kary, binomial]
//	branching: 4
//	size: 100000
//	distribution: zipf
//	seed: 42
//	split: 0.25
type Workload struct {
	Engines      []string `yaml:"engines"`
	Branching    int      `yaml:"branching"`
	Size         int      `yaml:"size"`
	Distribution string   `yaml:"distribution"`
	Seed         int64    `yaml:"seed"`
	Split        float64  `yaml:"split"`
}

var (
	engineNames   = []string{"binary", "kary", "binomial", "reference"}
	distributions = []string{"uniform", "zipf", "ascending", "descending", "constant"}
)

// newWorkload returns a Workload with the same defaults as the command
// line flags. Config files are decoded into it so that fields they omit
// keep their defaults while explicit zero values are retained.
func newWorkload() Workload {
	return Workload{
		Engines:      []string{"all"},
		Branching:    7,
		Size:         10000,
		Distribution: "uniform",
		Seed:         1,
		Split:        0.5,
	}
}

func expandEngines(names []string) []string {
	var out []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		switch n {
		case "":
		case "all":
			out = append(out, engineNames...)
		default:
			out = append(out, n)
		}
	}
	return out
}

// Validate returns an error describing every problem with the workload.
func (w Workload) Validate() error {
	errs := errors.M{}
	if len(w.Engines) == 0 {
		errs.Append(fmt.Errorf("no engines specified"))
	}
	for _, e := range w.Engines {
		if !slices.Contains(engineNames, e) {
			errs.Append(fmt.Errorf("unknown engine %q, must be one of: %v", e, strings.Join(engineNames, ", ")))
		}
	}
	if w.Branching < 2 {
		errs.Append(fmt.Errorf("branching factor must be at least 2: %v", w.Branching))
	}
	if w.Size < 0 {
		errs.Append(fmt.Errorf("size must not be negative: %v", w.Size))
	}
	if !slices.Contains(distributions, w.Distribution) {
		errs.Append(fmt.Errorf("unknown distribution %q, must be one of: %v", w.Distribution, strings.Join(distributions, ", ")))
	}
	if w.Split < 0 || w.Split > 1 {
		errs.Append(fmt.Errorf("split must be between 0 and 1: %v", w.Split))
	}
	return errs.Err()
}

// Priorities returns the priorities for the workload, the i'th priority
// is assigned to the value i.
func (w Workload) Priorities() []int {
	r := make([]int, w.Size)
	rnd := rand.New(rand.NewSource(w.Seed)) // #nosec: G404
	switch w.Distribution {
	case "uniform":
		for i := range r {
			r[i] = rnd.Intn(1 << 30)
		}
	case "zipf":
		gen := rand.NewZipf(rnd, 3.0, 1.1, 1<<30)
		for i := range r {
			r[i] = int(gen.Uint64())
		}
	case "ascending":
		for i := range r {
			r[i] = i
		}
	case "descending":
		for i := range r {
			r[i] = w.Size - i
		}
	}
	return r
}

// String returns the yaml representation of the workload.
func (w Workload) String() string {
	out, err := yaml.Marshal(w)
	if err != nil {
		return fmt.Sprintf("failed to marshal workload: %v", err)
	}
	return string(out)
}
