// Copyright 2021 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
)

var (
	testFlag  bool
	lintFlag  bool
	smokeFlag bool
)

func done(msg string, err error) {
	fmt.Printf("Failed: %s: %s\n", msg, err)
	os.Exit(1)
}

func main() {
	ctx := context.Background()
	flag.BoolVar(&testFlag, "test", false, "run tests")
	flag.BoolVar(&lintFlag, "lint", false, "run go vet")
	flag.BoolVar(&smokeFlag, "smoke", false, "run pqbench against every engine")
	flag.Parse()

	if !(testFlag || lintFlag || smokeFlag) {
		fmt.Fprintf(os.Stderr, "at least one flag is required\n")
		flag.Usage()
		os.Exit(1)
	}
	if testFlag {
		if err := run(ctx, "tests", "go", "test", "-failfast", "--covermode=atomic", "-race", "./..."); err != nil {
			done("tests", err)
		}
	}
	if lintFlag {
		if err := run(ctx, "lint", "go", "vet", "./..."); err != nil {
			done("lint", err)
		}
	}
	if smokeFlag {
		for _, sub := range []string{"run", "merge"} {
			for _, dist := range []string{"uniform", "zipf", "descending", "constant"} {
				if err := run(ctx, sub+"/"+dist, "go", "run", "./cmd/pqbench", sub,
					"--engines=all", "--n=20000", "--distribution="+dist, "--log-level=2"); err != nil {
					done("smoke", err)
				}
			}
		}
	}
}

func run(ctx context.Context, name string, command string, args ...string) error {
	fmt.Printf("%v...\n", name)
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		fmt.Printf("%v... ok\n", name)
	} else {
		fmt.Printf("%v... failed\n", name)
	}
	return err
}
