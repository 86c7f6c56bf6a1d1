package main

// Copyright (c) the ESI contributors.
// Licensed under the Apache License 2.0.

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	utillog "github.com/openstack-esi/nodenet/pkg/util/log"
)

var (
	gitCommit = "unknown"
)

func usage() {
	fmt.Fprint(flag.CommandLine.Output(), "usage: \n")
	fmt.Fprintf(flag.CommandLine.Output(), "       %s reconcile {node} [network...]\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "       %s attached {node}\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	dryRun := flag.Bool("dry-run", false, "log intended changes without making them")
	flag.Parse()

	ctx := context.Background()
	log := utillog.GetLogger()

	log.Printf("starting, git commit %s", gitCommit)

	var err error
	switch strings.ToLower(flag.Arg(0)) {
	case "reconcile":
		checkMinArgs(2)
		err = reconcile(ctx, log, *dryRun, flag.Arg(1), flag.Args()[2:])
	case "attached":
		checkArgs(2)
		err = attached(ctx, log, flag.Arg(1))
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}

func checkArgs(required int) {
	if len(flag.Args()) != required {
		usage()
		os.Exit(2)
	}
}

func checkMinArgs(required int) {
	if len(flag.Args()) < required {
		usage()
		os.Exit(2)
	}
}
