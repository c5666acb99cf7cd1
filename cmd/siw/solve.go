// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/dalzilio/siw"
	"github.com/dalzilio/siw/policy"
	"github.com/dalzilio/siw/strips"
	"github.com/dalzilio/siw/telemetry"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// result is the outcome of solving one problem.
type result struct {
	path    string
	run     string
	problem *strips.Problem
	plan    *siw.Plan
	err     error // error while searching
	load    error // error while loading the problem or the sketch
}

// jsonResult is the JSON representation of a result.
type jsonResult struct {
	Run      string     `json:"run"`
	Problem  string     `json:"problem"`
	Solved   bool       `json:"solved"`
	Reason   string     `json:"reason,omitempty"`
	Cost     float64    `json:"cost,omitempty"`
	Actions  []string   `json:"actions,omitempty"`
	Widths   []int      `json:"widths,omitempty"`
	Rules    []string   `json:"rules,omitempty"`
	Stats    *siw.Stats `json:"stats,omitempty"`
	Expanded int        `json:"expanded"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	conf, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, verbose, logJSON)
	reg := prometheus.NewRegistry()
	sink := telemetry.NewPrometheus(reg, "siw")
	if conf.MetricsAddr != "" {
		go serveMetrics(conf.MetricsAddr, reg, logger)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if conf.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, conf.Timeout)
		defer cancel()
	}

	results := make([]result, len(args))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(conf.Jobs)
	for k, path := range args {
		g.Go(func() error {
			results[k] = solveOne(gctx, path, conf, logger, sink)
			return nil
		})
	}
	_ = g.Wait()

	out := cmd.OutOrStdout()
	var failed error
	for _, r := range results {
		if r.load != nil {
			failed = errors.Join(failed, r.load)
			logger.Error("cannot load problem", slog.String("path", r.path), slog.Any("error", r.load))
			continue
		}
		if jsonOutput {
			err = writeJSON(out, r)
		} else {
			err = writeText(out, r)
		}
		if err != nil {
			return err
		}
	}
	return failed
}

// solveOne loads and solves one problem. Each search runs in the calling
// goroutine.
func solveOne(ctx context.Context, path string, conf RunConfig, logger *slog.Logger, sink *telemetry.Prometheus) result {
	r := result{path: path, run: uuid.NewString()}
	log := logger.With(slog.String("run", r.run), slog.String("problem", path))
	if r.problem, r.load = strips.LoadFile(path); r.load != nil {
		return r
	}
	opts, err := conf.options(log, sink)
	if err != nil {
		r.load = err
		return r
	}
	if conf.Sketch != "" {
		sk, err := policy.LoadFile(conf.Sketch, r.problem.FluentNames())
		if err != nil {
			r.load = err
			return r
		}
		sk.SetLogger(log)
		opts = append(opts, siw.Sketch(sk))
	}
	log.Info("solving", slog.Int("fluents", r.problem.Fluents()), slog.Int("actions", r.problem.NumActions()))
	r.plan, r.err = siw.FindPlan(ctx, r.problem, opts...)
	sink.Result(r.plan, r.err)
	if r.err != nil {
		log.Warn("no plan", slog.String("reason", telemetry.Result(r.err)), slog.Any("error", r.err))
	}
	return r
}

func writeText(w io.Writer, r result) error {
	fmt.Fprintf(w, "; problem %s (run %s)\n", r.problem.Name(), r.run)
	if r.err != nil {
		_, err := fmt.Fprintf(w, "; no plan: %s\n", r.err)
		return err
	}
	if err := siw.PrintPlan(w, r.plan, r.problem); err != nil {
		return err
	}
	return siw.PrintStats(w, r.plan.Stats)
}

func writeJSON(w io.Writer, r result) error {
	res := jsonResult{Run: r.run, Problem: r.problem.Name(), Solved: r.err == nil}
	if r.err != nil {
		res.Reason = telemetry.Result(r.err)
		var f *siw.Failure
		if errors.As(r.err, &f) {
			res.Expanded = f.Stats.Expanded
		}
	} else {
		res.Cost = r.plan.Cost
		res.Widths = r.plan.Widths()
		res.Rules = r.plan.Rules()
		res.Stats = &r.plan.Stats
		res.Expanded = r.plan.Stats.Expanded
		for _, a := range r.plan.Actions {
			res.Actions = append(res.Actions, r.problem.ActionName(a))
		}
	}
	enc := json.NewEncoder(w)
	return enc.Encode(res)
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	logger.Info("serving metrics", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", slog.Any("error", err))
	}
}
