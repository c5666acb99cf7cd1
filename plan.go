// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import (
	"fmt"
	"slices"
)

// Segment is the part of a plan found during one episode.
type Segment struct {
	Actions []Action // Actions from the root of the episode to its subgoal
	Cost    float64  // Sum of the cost of the actions
	Width   int      // Width recorded for the episode
	Rule    string   // Rule that fired at the subgoal, empty if none
}

// Plan is the result of a successful run. Actions is the concatenation of the
// actions of all the segments, in order.
type Plan struct {
	Actions  []Action
	Cost     float64
	Segments []Segment
	Stats    Stats
}

func (p *Plan) add(s Segment) {
	p.Actions = append(p.Actions, s.Actions...)
	p.Cost += s.Cost
	p.Segments = append(p.Segments, s)
}

// Len returns the number of actions in the plan.
func (p *Plan) Len() int {
	return len(p.Actions)
}

// Widths returns the width of each segment.
func (p *Plan) Widths() []int {
	res := make([]int, len(p.Segments))
	for k, s := range p.Segments {
		res[k] = s.Width
	}
	return res
}

// Rules returns the rules that fired at the end of each segment.
func (p *Plan) Rules() []string {
	res := make([]string, len(p.Segments))
	for k, s := range p.Segments {
		res[k] = s.Rule
	}
	return res
}

// Replay applies the actions of the plan from the initial state of m and
// returns the final state. It returns an error if an action is not applicable.
func (p *Plan) Replay(m Model) (State, error) {
	s := m.Init()
	for k, a := range p.Actions {
		if !slices.Contains(m.Actions(s), a) {
			return s, fmt.Errorf("action %d (step %d) is not applicable in state %s", a, k, s)
		}
		s = m.Next(s, a)
	}
	return s, nil
}

// Valid returns true if the plan can be replayed in m and leads to a goal
// state.
func (p *Plan) Valid(m Model) bool {
	s, err := p.Replay(m)
	return err == nil && m.Goal(s)
}
