// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import "slices"

// goalsource decides when an episode reaches a subgoal.
type goalsource interface {
	// firstbound is the bound used at the start of every episode.
	firstbound() int
	// start is called before every call to IW. Parameter reroot is false when
	// we call IW again from the same root, with a larger bound.
	start(root State, reroot bool)
	// accept is the goal test passed to IW.
	accept(id int, s State) bool
	// fired returns the identity of the rule that accepted the last subgoal, or
	// the empty string.
	fired() string
	// width returns the width recorded for a segment of the given length found
	// with the given bound.
	width(bound, length int) int
}

// ************************************************************

// atomgoals accepts states that keep all the goal atoms true at the root and
// make at least one more goal atom true.
type atomgoals struct {
	goals    []int
	achieved []int // goal atoms true at the root
}

func (g *atomgoals) firstbound() int {
	return 1
}

func (g *atomgoals) start(root State, _ bool) {
	g.achieved = g.achieved[:0]
	for _, f := range g.goals {
		if root.Has(f) {
			g.achieved = append(g.achieved, f)
		}
	}
}

func (g *atomgoals) accept(_ int, s State) bool {
	if len(g.achieved) == len(g.goals) || !s.HasAll(g.achieved) {
		return false
	}
	for _, f := range g.goals {
		if s.Has(f) && !slices.Contains(g.achieved, f) {
			return true
		}
	}
	return false
}

func (g *atomgoals) fired() string {
	return ""
}

func (g *atomgoals) width(bound, length int) int {
	if length <= 1 {
		return 0
	}
	return bound
}

// ************************************************************

// sketchgoals accepts states where a rule of the sketch fires, or states
// satisfying the goal of the model.
type sketchgoals struct {
	model  Model
	policy Policy
	mode   Mode
	cache  Denotations // feature values, by node ID
	goals  goalcache   // negative goal tests, cleared when we reroot
	begin  Valuation   // root of the current episode
	rules  []Rule      // rules whose conditions hold at the root
	rule   string      // last rule that fired
	store  arena       // subgoals accepted during the run (Lookahead)
	seen   *closed
}

func newsketchgoals(m Model, c *configs) *sketchgoals {
	g := &sketchgoals{model: m, policy: c.policy, mode: c.mode}
	g.goals.cacheinit(c.goalcachesize)
	g.seen = newclosed(&g.store)
	return g
}

func (g *sketchgoals) firstbound() int {
	if g.mode == Lookahead {
		return 0
	}
	return 1
}

func (g *sketchgoals) start(root State, reroot bool) {
	g.cache.Reset()
	if reroot {
		g.goals.cachereset()
		if g.mode == Lookahead {
			g.remember(root)
		}
	}
	g.begin = Valuation{ID: 0, State: root, Cache: &g.cache}
	g.rules = g.policy.Guards(g.begin)
	g.rule = ""
}

// remember adds s to the set of subgoals already accepted during the run.
func (g *sketchgoals) remember(s State) {
	if _, ok := g.seen.seek(s); !ok {
		g.seen.put(g.store.add(s, -1, NoAction, 0))
	}
}

func (g *sketchgoals) accept(id int, s State) bool {
	if id == 0 {
		return false
	}
	if g.mode == Lookahead {
		if _, ok := g.seen.seek(s); ok {
			return false
		}
	}
	if res, ok := g.goals.match(s); ok {
		return res
	}
	if r := g.policy.Fire(g.begin, Valuation{ID: id, State: s, Cache: &g.cache}, g.rules); r != nil {
		g.rule = r.String()
		return true
	}
	if g.model.Goal(s) {
		g.rule = ""
		return true
	}
	return g.goals.set(s, false)
}

func (g *sketchgoals) fired() string {
	return g.rule
}

func (g *sketchgoals) width(bound, length int) int {
	if g.mode == Lookahead {
		return bound
	}
	if length <= 1 {
		return 0
	}
	return bound
}
