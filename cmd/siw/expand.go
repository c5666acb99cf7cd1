// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dalzilio/siw"
	"github.com/dalzilio/siw/strips"
	"github.com/spf13/cobra"
)

func runExpand(cmd *cobra.Command, args []string) error {
	conf, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, verbose, logJSON)
	p, err := strips.LoadFile(args[0])
	if err != nil {
		return err
	}
	sp, err := siw.Expand(cmd.Context(), p,
		siw.Maxexpansions(conf.MaxExpansions),
		siw.Seed(conf.Seed),
		siw.Samplesize(conf.Sample),
		siw.Logger(logger))
	if err != nil && !errors.Is(err, siw.ErrInterrupted) {
		return err
	}
	out := cmd.OutOrStdout()
	if err := siw.PrintSpace(out, sp, p); err != nil {
		return err
	}
	fmt.Fprintf(out, "; %d nodes, %d edges, %d goals, %d dead ends, complete: %t\n",
		sp.Len(), sp.Edges(), len(sp.Goals), len(sp.DeadEnds()), sp.Complete)
	if len(sp.Sample) > 0 {
		fmt.Fprintf(out, "; sample %v\n", sp.Sample)
	}
	return err
}
