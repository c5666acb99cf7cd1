// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

// toy is a small STRIPS model used in tests, with fluents given by their index.
type toy struct {
	n       int
	init    []int
	goal    []int
	actions []toyaction
}

type toyaction struct {
	pre, add, del []int
}

func (m *toy) Init() State         { return NewState(m.init...) }
func (m *toy) Goal(s State) bool   { return s.HasAll(m.goal) }
func (m *toy) GoalFluents() []int  { return m.goal }
func (m *toy) Cost(Action) float64 { return 1 }
func (m *toy) Fluents() int        { return m.n }
func (m *toy) Next(s State, a Action) State {
	return s.Update(m.actions[a].add, m.actions[a].del)
}

func (m *toy) Actions(s State) []Action {
	res := []Action{}
	for k, a := range m.actions {
		if s.HasAll(a.pre) {
			res = append(res, Action(k))
		}
	}
	return res
}

// Fluents of the diamond problem
const (
	fa = iota
	fb
	fc
	fg
)

// diamond needs width 2: the only way to reach g is through state {a, c},
// whose atoms are both seen before in a breadth-first search.
func diamond() *toy {
	return &toy{
		n:    4,
		init: []int{fa, fb},
		goal: []int{fg},
		actions: []toyaction{
			{pre: []int{fa}, add: []int{fc}, del: []int{fa}}, // Q
			{pre: []int{fb}, add: []int{fc}, del: []int{fb}}, // R
			{pre: []int{fa, fc}, add: []int{fg}},             // G
		},
	}
}

// lightswitch has fluents off (0), on (1) and g (2), which is never added by
// an action. The goal is either on or g.
func lightswitch(goalIsOn bool) *toy {
	m := &toy{
		n:    3,
		init: []int{0},
		actions: []toyaction{
			{pre: []int{0}, add: []int{1}, del: []int{0}},
			{pre: []int{1}, add: []int{0}, del: []int{1}},
		},
	}
	if goalIsOn {
		m.goal = []int{1}
	} else {
		m.goal = []int{2}
	}
	return m
}
