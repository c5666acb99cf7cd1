// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"errors"
	"fmt"

	"github.com/dalzilio/siw/policy"
	"github.com/dalzilio/siw/strips"
	"github.com/spf13/cobra"
)

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	var failed error
	for _, path := range args {
		p, err := strips.LoadFile(path)
		if err != nil {
			fmt.Fprintf(out, "%s: %s\n", path, err)
			failed = errors.Join(failed, err)
			continue
		}
		if sketchPath != "" {
			sk, err := policy.LoadFile(sketchPath, p.FluentNames())
			if err != nil {
				fmt.Fprintf(out, "%s: %s\n", path, err)
				failed = errors.Join(failed, err)
				continue
			}
			fmt.Fprintf(out, "%s: ok (%d fluents, %d actions, %d features, %d rules)\n",
				path, p.Fluents(), p.NumActions(), len(sk.Features()), len(sk.Rules()))
			continue
		}
		fmt.Fprintf(out, "%s: ok (%d fluents, %d actions)\n", path, p.Fluents(), p.NumActions())
	}
	return failed
}
