// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw_test

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dalzilio/siw"
	"github.com/dalzilio/siw/policy"
	"github.com/dalzilio/siw/strips"
)

const switchProblem = `
name: switch
fluents: [off, on]
init: [off]
goal: [on]
actions:
  - name: toggle
    pre: [off]
    add: [on]
    del: [off]
  - name: untoggle
    pre: [on]
    add: [off]
    del: [on]
`

// This example shows the basic usage of the package: load a problem, find a
// plan and print its actions.
func Example_basic() {
	p, err := strips.Load(strings.NewReader(switchProblem))
	if err != nil {
		fmt.Println(err)
		return
	}
	plan, err := siw.FindPlan(context.Background(), p)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, a := range plan.Actions {
		fmt.Println(p.ActionName(a))
	}
	fmt.Printf("cost: %g\n", plan.Cost)
	// Output:
	// toggle
	// cost: 1
}

const collectSketch = `
features:
  - name: remaining
    kind: numerical
    expr: Count("item*")
rules:
  - conditions: [c_n_gt remaining]
    effects: [e_n_dec remaining]
`

// This example shows how to guide the search with a sketch. Every episode
// ends as soon as one more item is collected.
func Example_sketch() {
	p, _ := strips.Compile(strips.Collect(2))
	sk, err := policy.Load(strings.NewReader(collectSketch), p.FluentNames())
	if err != nil {
		fmt.Println(err)
		return
	}
	plan, err := siw.FindPlan(context.Background(), p, siw.Sketch(sk))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, seg := range plan.Segments {
		fmt.Printf("%s %d %s\n", p.ActionName(seg.Actions[0]), seg.Width, seg.Rule)
	}
	// Output:
	// collect 1 0 (:rule (:conditions (:c_n_gt 0)) (:effects (:e_n_dec 0)))
	// collect 2 0 (:rule (:conditions (:c_n_gt 0)) (:effects (:e_n_dec 0)))
}

// This example shows how to test the reason of a failure.
func Example_failure() {
	broken := strings.NewReplacer("[off, on]", "[off, on, broken]", "goal: [on]", "goal: [broken]")
	p, _ := strips.Load(strings.NewReader(broken.Replace(switchProblem)))
	_, err := siw.FindPlan(context.Background(), p)
	var f *siw.Failure
	if errors.As(err, &f) {
		fmt.Println(errors.Is(err, siw.ErrDeadEnd), f.Unsolvable(), f.Bound)
	}
	// Output:
	// true true 1
}
