// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	configPath  string
	sketchPath  string
	maxWidth    int
	maxRules    int
	maxExpand   int
	modeName    string
	tableName   string
	tableSize   int
	jobs        int
	timeout     string
	metricsAddr string
	jsonOutput  bool
	verbose     bool
	logJSON     bool
	seed        int64
	sampleSize  int

	rootCmd = &cobra.Command{
		Use:          "siw",
		Short:        "Width-based planner for grounded STRIPS problems",
		SilenceUsage: true,
	}

	solveCmd = &cobra.Command{
		Use:   "solve PROBLEM...",
		Short: "Find a plan for each problem using Serialized IW",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSolve, // Defined in solve.go
	}

	expandCmd = &cobra.Command{
		Use:   "expand PROBLEM",
		Short: "Print the reachable state space of a problem",
		Args:  cobra.ExactArgs(1),
		RunE:  runExpand, // Defined in expand.go
	}

	validateCmd = &cobra.Command{
		Use:   "validate PROBLEM...",
		Short: "Check problem files (and a sketch) without searching",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runValidate, // Defined in validate.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log the progress of the search")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "always write logs in JSON")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with the search parameters")
	rootCmd.PersistentFlags().StringVar(&sketchPath, "sketch", "", "YAML file with a policy sketch")

	solveCmd.Flags().IntVarP(&maxWidth, "max-width", "w", 2, "maximal width of IW searches")
	solveCmd.Flags().IntVar(&maxRules, "max-rules", 10000, "maximal number of subgoal episodes")
	solveCmd.Flags().IntVar(&maxExpand, "max-expansions", 0, "expansion budget (0 for no limit)")
	solveCmd.Flags().StringVar(&modeName, "mode", "reroot", "subgoal detection with sketches (reroot or lookahead)")
	solveCmd.Flags().StringVar(&tableName, "table", "map", "novelty table (map or dense)")
	solveCmd.Flags().IntVar(&tableSize, "table-size", 1<<28, "maximal number of bits in dense tables")
	solveCmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "number of problems solved concurrently")
	solveCmd.Flags().StringVar(&timeout, "timeout", "", "time limit for the whole batch, e.g. 30s")
	solveCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	solveCmd.Flags().BoolVar(&jsonOutput, "json", false, "print results in JSON")

	expandCmd.Flags().IntVar(&maxExpand, "max-expansions", 0, "expansion budget (0 for no limit)")
	expandCmd.Flags().Int64Var(&seed, "seed", 0, "seed used to sample nodes")
	expandCmd.Flags().IntVar(&sampleSize, "sample", 0, "number of sampled nodes")

	rootCmd.AddCommand(solveCmd, expandCmd, validateCmd)
}
