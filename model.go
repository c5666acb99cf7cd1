// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

// Action is the identifier of a ground action in a Model.
type Action int

// Model is an interface giving access to a classical planning problem. Fluents
// are identified by integers in the range [0..Fluents()) and states are sets of
// true fluents. Implementations must be deterministic: Actions should always
// list applicable actions in the same order for equal states.
type Model interface {
	// Init returns the initial state of the problem.
	Init() State

	// Goal returns true if s satisfies the goal condition.
	Goal(s State) bool

	// GoalFluents returns the fluents occurring in the goal condition. It is
	// used to detect subgoals when searching without a sketch.
	GoalFluents() []int

	// Actions returns the actions applicable in state s.
	Actions(s State) []Action

	// Next returns the state obtained by applying action a in state s. The
	// action must be applicable.
	Next(s State, a Action) State

	// Cost returns the (non-negative) cost of action a.
	Cost(a Action) float64

	// Fluents returns the number of fluents in the problem.
	Fluents() int
}

// Namer is implemented by models that can give a printable name to fluents
// and actions. It is used by the printers in this package.
type Namer interface {
	FluentName(f int) string
	ActionName(a Action) string
}

// Rule is a rule of a policy sketch. Its string representation is the
// identity of the rule recorded in plan segments.
type Rule interface {
	String() string
}

// Valuation gives access to a state reached during an episode. ID is the
// identifier of the node in the current episode, with the root always having
// ID 0. Cache can be used to memoize the value of features for this node; it
// is reset at the start of every episode.
type Valuation struct {
	ID    int
	State State
	Cache *Denotations
}

// Policy is the interface of policy sketches.
type Policy interface {
	// Guards returns the rules whose conditions hold in the start state of an
	// episode.
	Guards(start Valuation) []Rule

	// Fire returns the first rule, among rules, whose effects hold between the
	// start state and the target state, or nil if no rule fires.
	Fire(start, target Valuation, rules []Rule) Rule
}

// Sink is the interface of observers receiving telemetry events during search.
// Events are delivered synchronously from the searching goroutine.
type Sink interface {
	// Expanded is called before the expansion of a node at depth g.
	Expanded(g int)
	// Generated is called for every generated node, at depth g.
	Generated(g int)
	// Rate is called periodically with the total number of generated nodes and
	// the average generation rate since the start of the run.
	Rate(generated int, perSecond float64)
}
