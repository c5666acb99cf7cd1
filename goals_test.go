// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomGoals(t *testing.T) {
	g := &atomgoals{goals: []int{1, 2}}
	g.start(NewState(0, 1), true)
	assert.False(t, g.accept(1, NewState(0, 1)))
	assert.False(t, g.accept(1, NewState(1, 3)))
	// goal atom 1 must stay true
	assert.False(t, g.accept(1, NewState(2)))
	assert.True(t, g.accept(1, NewState(1, 2)))
	g.start(NewState(1, 2), true)
	assert.False(t, g.accept(1, NewState(1, 2, 3)))
	assert.Equal(t, 0, g.width(2, 1))
	assert.Equal(t, 2, g.width(2, 3))
	assert.Equal(t, 1, g.firstbound())
}

type namedrule string

func (r namedrule) String() string { return string(r) }

// fireon is a policy whose single rule fires on states containing fluent f.
// It stores the size of states in the denotation cache and counts the number
// of calls to Fire.
type fireon struct {
	f     int
	fires int
}

func (p *fireon) Guards(start Valuation) []Rule {
	return []Rule{namedrule("rule")}
}

func (p *fireon) Fire(start, target Valuation, rules []Rule) Rule {
	p.fires++
	target.Cache.Store(target.ID, []int{target.State.Len()})
	if target.State.Has(p.f) {
		return rules[0]
	}
	return nil
}

func TestSketchGoals(t *testing.T) {
	m := lightswitch(false)
	p := &fireon{f: 2}
	c := makeconfigs()
	c.policy = p
	g := newsketchgoals(m, c)
	g.start(NewState(0), true)

	// root is never accepted
	assert.False(t, g.accept(0, NewState(0)))
	assert.Equal(t, 0, p.fires)

	assert.False(t, g.accept(1, NewState(1)))
	assert.Equal(t, 1, g.cache.Len())
	// negative results are cached
	assert.False(t, g.accept(2, NewState(1)))
	assert.Equal(t, 1, p.fires)
	assert.Equal(t, 1, g.goals.hit)

	assert.True(t, g.accept(3, NewState(1, 2)))
	assert.Equal(t, "rule", g.fired())

	// same root, larger bound: denotations are cleared but not goal tests
	g.start(NewState(0), false)
	assert.Equal(t, 0, g.cache.Len())
	assert.False(t, g.accept(1, NewState(1)))
	assert.Equal(t, 2, p.fires)

	// new root: goal tests are cleared
	g.start(NewState(1), true)
	assert.False(t, g.accept(1, NewState(0)))
	assert.Equal(t, 3, p.fires)
}

func TestSketchGoalsFallback(t *testing.T) {
	m := lightswitch(true)
	c := makeconfigs()
	c.policy = &fireon{f: 2}
	g := newsketchgoals(m, c)
	g.start(NewState(0), true)
	assert.True(t, g.accept(1, NewState(1)))
	assert.Equal(t, "", g.fired())
	assert.Equal(t, 0, g.width(1, 1))
}

func TestSketchGoalsLookahead(t *testing.T) {
	m := lightswitch(false)
	c := makeconfigs()
	c.policy = &fireon{f: 1}
	c.mode = Lookahead
	g := newsketchgoals(m, c)
	assert.Equal(t, 0, g.firstbound())
	g.start(NewState(0), true)
	assert.True(t, g.accept(1, NewState(1)))
	g.start(NewState(1), true)
	// the previous root was already accepted
	assert.False(t, g.accept(1, NewState(0)))
	// and so is the current one
	assert.False(t, g.accept(2, NewState(1)))
	assert.Equal(t, 1, g.width(1, 1))
}
