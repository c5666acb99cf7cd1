// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package siw

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
)

func fluentname(n Namer, f int) string {
	if n == nil {
		return fmt.Sprintf("f%d", f)
	}
	return n.FluentName(f)
}

func actionname(n Namer, a Action) string {
	if n == nil {
		return fmt.Sprintf("a%d", a)
	}
	return n.ActionName(a)
}

// Describe returns a one-line description of state s, listing the true fluents
// in index order. Parameter n can be nil, in which case we use fluent indices.
func Describe(s State, n Namer) string {
	names := make([]string, s.Len())
	for k, f := range s.Fluents() {
		names[k] = fluentname(n, f)
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// PrintState outputs the true fluents of s, one per line.
func PrintState(out io.Writer, s State, n Namer) error {
	w := bufio.NewWriter(out)
	for _, f := range s.Fluents() {
		fmt.Fprintf(w, "%d\t%s\n", f, fluentname(n, f))
	}
	return w.Flush()
}

// ******************************************************************************************************

// PrintPlan outputs a textual representation of plan p. Actions are numbered
// and grouped by segments; each segment starts with a header giving its width
// and, when using a sketch, the rule that fired at its end.
func PrintPlan(out io.Writer, p *Plan, n Namer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	step := 1
	for k, seg := range p.Segments {
		rule := seg.Rule
		if rule == "" {
			rule = "goal"
		}
		fmt.Fprintf(w, "; segment %d\twidth %d\t%s\n", k+1, seg.Width, rule)
		for _, a := range seg.Actions {
			fmt.Fprintf(w, "%d\t(%s)\t%g\n", step, actionname(n, a), costof(n, a, seg))
			step++
		}
	}
	fmt.Fprintf(w, "; cost %g\t%d actions\t%d segments\n", p.Cost, p.Len(), len(p.Segments))
	return w.Flush()
}

// costof returns the cost of an action in a segment. Segments only record
// their total cost, so we spread it evenly when n is not also a Model.
func costof(n Namer, a Action, seg Segment) float64 {
	if m, ok := n.(interface{ Cost(Action) float64 }); ok {
		return m.Cost(a)
	}
	return seg.Cost / float64(len(seg.Actions))
}

// PrintStats outputs the statistics of a run.
func PrintStats(out io.Writer, s Stats) error {
	_, err := fmt.Fprint(out, s.String())
	return err
}

// PrintSpace outputs the state space sp, with one line for each node, in the
// form `(N) id code atoms`, followed by one line for each transition, in the
// form `(E) parent child`. The code of a node is G for goals, D for dead ends,
// and A (alive) otherwise.
func PrintSpace(out io.Writer, sp *Space, n Namer) error {
	w := bufio.NewWriter(out)
	for _, node := range sp.Nodes {
		code := "A"
		switch {
		case sp.isgoal(node.ID):
			code = "G"
		case !sp.Alive[node.ID]:
			code = "D"
		}
		fmt.Fprintf(w, "(N) %d %s %s\n", node.ID, code, Describe(node.State, n))
	}
	for p, cs := range sp.Children {
		for _, c := range cs {
			fmt.Fprintf(w, "(E) %d %d\n", p, c)
		}
	}
	return w.Flush()
}

func (sp *Space) isgoal(id int) bool {
	_, ok := slices.BinarySearch(sp.Goals, id)
	return ok
}
