// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package strips

import (
	"fmt"

	"github.com/dalzilio/siw"
	"github.com/pkg/errors"
)

// Problem is a compiled STRIPS problem. It implements the siw.Model and
// siw.Namer interfaces.
type Problem struct {
	name    string
	domain  string
	names   []string       // fluent names, by index
	index   map[string]int // index of fluents, by name
	init    siw.State
	goal    []int
	actions []action
}

type action struct {
	name string
	pre  []int
	add  []int
	del  []int
	cost float64
}

// Compile checks a problem file and returns the corresponding Problem.
func Compile(f *File) (*Problem, error) {
	if err := f.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid problem")
	}
	p := &Problem{name: f.Name, domain: f.Domain, index: make(map[string]int)}
	declared := len(f.Fluents) > 0
	for _, n := range f.Fluents {
		p.declare(n)
	}
	lookup := func(names []string, where string) ([]int, error) {
		res := make([]int, 0, len(names))
		for _, n := range names {
			k, ok := p.index[n]
			if !ok {
				if declared {
					return nil, errors.Errorf("undeclared fluent %q in %s", n, where)
				}
				k = p.declare(n)
			}
			res = append(res, k)
		}
		return res, nil
	}

	init, err := lookup(f.Init, "init")
	if err != nil {
		return nil, errors.Wrapf(err, "problem %s", f.Name)
	}
	if p.goal, err = lookup(f.Goal, "goal"); err != nil {
		return nil, errors.Wrapf(err, "problem %s", f.Name)
	}
	for _, a := range f.Actions {
		act := action{name: a.Name, cost: 1}
		if a.Cost != nil {
			act.cost = *a.Cost
		}
		where := fmt.Sprintf("action %s", a.Name)
		if act.pre, err = lookup(a.Pre, where); err != nil {
			return nil, errors.Wrapf(err, "problem %s", f.Name)
		}
		if act.add, err = lookup(a.Add, where); err != nil {
			return nil, errors.Wrapf(err, "problem %s", f.Name)
		}
		if act.del, err = lookup(a.Del, where); err != nil {
			return nil, errors.Wrapf(err, "problem %s", f.Name)
		}
		p.actions = append(p.actions, act)
	}
	p.init = siw.NewState(init...)
	return p, nil
}

func (p *Problem) declare(name string) int {
	k := len(p.names)
	p.names = append(p.names, name)
	p.index[name] = k
	return k
}

// Name returns the name of the problem.
func (p *Problem) Name() string {
	return p.name
}

// Domain returns the name of the domain of the problem, if any.
func (p *Problem) Domain() string {
	return p.domain
}

// Init returns the initial state.
func (p *Problem) Init() siw.State {
	return p.init
}

// Goal returns true if all the goal fluents are true in s.
func (p *Problem) Goal(s siw.State) bool {
	return s.HasAll(p.goal)
}

// GoalFluents returns the goal fluents.
func (p *Problem) GoalFluents() []int {
	return p.goal
}

// Actions returns the actions applicable in s, in declaration order.
func (p *Problem) Actions(s siw.State) []siw.Action {
	res := []siw.Action{}
	for k, a := range p.actions {
		if s.HasAll(a.pre) {
			res = append(res, siw.Action(k))
		}
	}
	return res
}

// Next returns the result of applying action a in s.
func (p *Problem) Next(s siw.State, a siw.Action) siw.State {
	act := p.actions[a]
	return s.Update(act.add, act.del)
}

// Cost returns the cost of action a.
func (p *Problem) Cost(a siw.Action) float64 {
	return p.actions[a].cost
}

// Fluents returns the number of fluents.
func (p *Problem) Fluents() int {
	return len(p.names)
}

// NumActions returns the number of ground actions.
func (p *Problem) NumActions() int {
	return len(p.actions)
}

// FluentName returns the name of fluent f.
func (p *Problem) FluentName(f int) string {
	if f < 0 || f >= len(p.names) {
		return fmt.Sprintf("f%d", f)
	}
	return p.names[f]
}

// ActionName returns the name of action a.
func (p *Problem) ActionName(a siw.Action) string {
	if a < 0 || int(a) >= len(p.actions) {
		return fmt.Sprintf("a%d", a)
	}
	return p.actions[a].name
}

// FluentNames returns the names of all the fluents, by index. The result
// should not be modified.
func (p *Problem) FluentNames() []string {
	return p.names
}

// Fluent returns the index of the fluent with the given name.
func (p *Problem) Fluent(name string) (int, bool) {
	k, ok := p.index[name]
	return k, ok
}

// Action returns the first action with the given name.
func (p *Problem) Action(name string) (siw.Action, bool) {
	for k, a := range p.actions {
		if a.name == name {
			return siw.Action(k), true
		}
	}
	return siw.NoAction, false
}

// State returns the state where exactly the named fluents are true.
func (p *Problem) State(names ...string) (siw.State, error) {
	fs := make([]int, 0, len(names))
	for _, n := range names {
		k, ok := p.index[n]
		if !ok {
			return siw.State{}, errors.Errorf("unknown fluent %q", n)
		}
		fs = append(fs, k)
	}
	return siw.NewState(fs...), nil
}
