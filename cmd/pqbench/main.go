// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command pqbench exercises the priority queue engines in
// github.com/Talno/heaps with generated workloads, verifies that they
// dequeue in priority order and reports how long each engine took.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

const spec = `name: pqbench
summary: exercise and time the priority queue engines
commands:
  - name: run
    summary: enqueue a generated workload into each engine and drain it, verifying the dequeue order
  - name: merge
    summary: split a generated workload across two queues per engine, merge them and verify the result
`

type WorkloadFlags struct {
	cmdutil.LoggingFlags
	Config       string  `subcmd:"config,,'yaml workload specification, if set the remaining workload flags are ignored'"`
	Engines      string  `subcmd:"engines,all,'comma separated list of engines: binary, kary, binomial, reference or all'"`
	Branching    int     `subcmd:"k,7,branching factor for the kary engine"`
	Size         int     `subcmd:"n,10000,number of values to enqueue"`
	Distribution string  `subcmd:"distribution,uniform,'priority distribution: uniform, zipf, ascending, descending or constant'"`
	Seed         int64   `subcmd:"seed,1,seed for the random priority distributions"`
	Split        float64 `subcmd:"split,0.5,fraction of the workload placed in the first queue for the merge command"`
}

var cmdSet *subcmd.CommandSetYAML

func init() {
	cmdSet = subcmd.MustFromYAML(spec)
	cmdSet.Set("run").MustRunnerAndFlags(runCmd,
		subcmd.MustRegisteredFlagSet(&WorkloadFlags{}))
	cmdSet.Set("merge").MustRunnerAndFlags(mergeCmd,
		subcmd.MustRegisteredFlagSet(&WorkloadFlags{}))
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

// setup configures logging and returns the workload described by the
// flags or by the config file if one is specified.
func setup(ctx context.Context, fv *WorkloadFlags) (context.Context, func(), Workload, error) {
	logger, err := fv.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, Workload{}, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	closer := func() {
		if err := logger.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log: %v\n", err)
		}
	}
	var w Workload
	if len(fv.Config) > 0 {
		w = newWorkload()
		if err := cmdyaml.ParseConfigFileStrict(ctx, fv.Config, &w); err != nil {
			closer()
			return ctx, nil, Workload{}, err
		}
	} else {
		w = Workload{
			Engines:      strings.Split(fv.Engines, ","),
			Branching:    fv.Branching,
			Size:         fv.Size,
			Distribution: fv.Distribution,
			Seed:         fv.Seed,
			Split:        fv.Split,
		}
	}
	w.Engines = expandEngines(w.Engines)
	if err := w.Validate(); err != nil {
		closer()
		return ctx, nil, Workload{}, err
	}
	ctxlog.Logger(ctx).Debug("workload", "config", w.String())
	return ctx, closer, w, nil
}

func runCmd(ctx context.Context, values any, _ []string) error {
	ctx, closer, w, err := setup(ctx, values.(*WorkloadFlags))
	if err != nil {
		return err
	}
	defer closer()
	return Run(ctx, os.Stdout, w)
}

func mergeCmd(ctx context.Context, values any, _ []string) error {
	ctx, closer, w, err := setup(ctx, values.(*WorkloadFlags))
	if err != nil {
		return err
	}
	defer closer()
	return Merge(ctx, os.Stdout, w)
}
