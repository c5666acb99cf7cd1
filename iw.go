// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import (
	"context"
	"fmt"
	"log/slog"
)

// goaltest decides if a node ends the current episode. The root of an episode
// always has id 0.
type goaltest func(id int, s State) bool

// outcome is the result of a call to IW.
type outcome struct {
	goal      int // index of the node that reached a subgoal, -1 if none
	expanded  int
	generated int
	pruned    int
}

// engine implements IW(b), a breadth-first search that prunes every state
// that is not novel for the current bound. The arena, open and closed lists
// and novelty table are reused between episodes.
type engine struct {
	model    Model
	conf     *configs
	nodes    arena
	open     fifo
	closed   *closed
	table    table
	bound    int
	obs      *observer
	expanded int // expansions since the start of the run
}

func newengine(m Model, c *configs) *engine {
	e := &engine{model: m, conf: c}
	e.closed = newclosed(&e.nodes)
	e.table = newtable(c, m.Fluents())
	e.obs = newobserver(c.observer)
	return e
}

// restart is called at the start of every run.
func (e *engine) restart() {
	e.expanded = 0
	e.obs = newobserver(e.conf.observer)
}

// setbound changes the bound used in the next calls to run. We only resize
// the novelty table when the bound changes.
func (e *engine) setbound(b int) error {
	if b > 0 && b != e.table.arity() {
		if err := e.table.resize(b); err != nil {
			return err
		}
	}
	e.bound = b
	return nil
}

// interrupt is checked before every expansion.
func (e *engine) interrupt(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	if e.conf.maxexpansions > 0 && e.expanded >= e.conf.maxexpansions {
		return seterror(ErrInterrupted, "budget of %d expansions spent", e.conf.maxexpansions)
	}
	return nil
}

// run searches from root until it finds a node accepted by goal or until the
// open list is empty.
func (e *engine) run(ctx context.Context, root State, goal goaltest) (outcome, error) {
	out := outcome{goal: -1}
	e.nodes.reset()
	e.open.reset()
	e.closed.reset()
	if e.bound > 0 {
		e.table.reset()
		if _, err := e.table.novelty(root); err != nil {
			return out, err
		}
	}
	id := e.nodes.add(root, -1, NoAction, 0)
	e.closed.put(id)
	if goal(id, root) {
		out.goal = id
		return out, nil
	}
	if e.bound == 0 {
		return e.lookahead(ctx, out, goal)
	}
	e.open.push(id)
	for e.open.len() > 0 {
		if err := e.interrupt(ctx); err != nil {
			return out, err
		}
		n := e.nodes.get(e.open.pop())
		out.expanded++
		e.expanded++
		e.obs.expanded(n.G)
		for _, a := range e.model.Actions(n.State) {
			succ := e.model.Next(n.State, a)
			out.generated++
			e.obs.generatedat(n.G + 1)
			if _, ok := e.closed.seek(succ); ok {
				continue
			}
			k, err := e.table.novelty(succ)
			if err != nil {
				return out, err
			}
			if k > e.bound {
				out.pruned++
				continue
			}
			sid := e.nodes.add(succ, n.ID, a, e.model.Cost(a))
			if _DEBUG {
				e.conf.logger.Debug("generate", slog.Int("id", sid), slog.Int("parent", n.ID), slog.Int("novelty", k))
			}
			if goal(sid, succ) {
				out.goal = sid
				return out, nil
			}
			e.closed.put(sid)
			e.open.push(sid)
		}
	}
	if _DEBUG && _LOGLEVEL > 0 {
		e.logArena()
	}
	return out, nil
}

// lookahead implements IW(0): we only generate the successors of the root.
// Every successor that is not a subgoal counts as pruned.
func (e *engine) lookahead(ctx context.Context, out outcome, goal goaltest) (outcome, error) {
	if err := e.interrupt(ctx); err != nil {
		return out, err
	}
	root := e.nodes.get(0)
	out.expanded++
	e.expanded++
	e.obs.expanded(0)
	for _, a := range e.model.Actions(root.State) {
		succ := e.model.Next(root.State, a)
		out.generated++
		e.obs.generatedat(1)
		if _, ok := e.closed.seek(succ); ok {
			continue
		}
		sid := e.nodes.add(succ, 0, a, e.model.Cost(a))
		if goal(sid, succ) {
			out.goal = sid
			return out, nil
		}
		e.closed.put(sid)
		out.pruned++
	}
	return out, nil
}
