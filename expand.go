// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
)

// Space is the reachable state space of a model. Node IDs are indices in
// Nodes, in breadth-first order, with the initial state at index 0.
type Space struct {
	Nodes    []Node  // Reachable nodes, the BFS tree is given by field Parent
	Parents  [][]int // All the predecessors of each node
	Children [][]int // All the successors of each node
	Goals    []int   // Nodes satisfying the goal, in increasing order
	Alive    []bool  // Whether a goal can be reached from each node
	Sample   []int   // Sample of node IDs, in increasing order
	Complete bool    // False if the expansion was interrupted
}

// Len returns the number of nodes in the space.
func (sp *Space) Len() int {
	return len(sp.Nodes)
}

// DeadEnds returns the nodes from which no goal can be reached.
func (sp *Space) DeadEnds() []int {
	res := []int{}
	for k, alive := range sp.Alive {
		if !alive {
			res = append(res, k)
		}
	}
	return res
}

// Edges returns the number of distinct transitions in the space.
func (sp *Space) Edges() int {
	res := 0
	for _, c := range sp.Children {
		res += len(c)
	}
	return res
}

// Expand computes the state space of m with a breadth-first search without
// pruning. Search stops with an ErrInterrupted error when the context is done
// or when the budget set with option Maxexpansions is spent; in which case we
// still return the part of the space explored so far, with Complete set to
// false. Options Seed and Samplesize can be used to select a random sample of
// nodes.
func Expand(ctx context.Context, m Model, options ...Option) (*Space, error) {
	c := makeconfigs()
	for _, f := range options {
		f(c)
	}
	var nodes arena
	var open fifo
	cl := newclosed(&nodes)
	obs := newobserver(c.observer)
	sp := &Space{Parents: [][]int{nil}, Children: [][]int{nil}}

	open.push(nodes.add(m.Init(), -1, NoAction, 0))
	cl.put(0)
	var err error
	expanded := 0
	for open.len() > 0 {
		if e := ctx.Err(); e != nil {
			err = fmt.Errorf("%w: %w", ErrInterrupted, e)
			break
		}
		if c.maxexpansions > 0 && expanded >= c.maxexpansions {
			err = seterror(ErrInterrupted, "state space not fully explored after %d expansions", expanded)
			break
		}
		n := nodes.get(open.pop())
		expanded++
		obs.expanded(n.G)
		for _, a := range m.Actions(n.State) {
			succ := m.Next(n.State, a)
			obs.generatedat(n.G + 1)
			sid, ok := cl.seek(succ)
			if !ok {
				sid = nodes.add(succ, n.ID, a, m.Cost(a))
				cl.put(sid)
				open.push(sid)
				sp.Parents = append(sp.Parents, nil)
				sp.Children = append(sp.Children, nil)
			}
			if !slices.Contains(sp.Children[n.ID], sid) {
				sp.Children[n.ID] = append(sp.Children[n.ID], sid)
				sp.Parents[sid] = append(sp.Parents[sid], n.ID)
			}
		}
	}

	sp.Nodes = slices.Clone(nodes.nodes)
	sp.Complete = err == nil
	for _, n := range sp.Nodes {
		if m.Goal(n.State) {
			sp.Goals = append(sp.Goals, n.ID)
		}
	}
	sp.Alive = sp.backward()
	if c.samplesize > 0 {
		r := rand.New(rand.NewSource(c.seed))
		perm := r.Perm(len(sp.Nodes))
		sp.Sample = perm[:min(c.samplesize, len(perm))]
		slices.Sort(sp.Sample)
	}
	c.logger.Debug("state space",
		slog.Int("nodes", sp.Len()),
		slog.Int("edges", sp.Edges()),
		slog.Int("goals", len(sp.Goals)),
		slog.Bool("complete", sp.Complete))
	return sp, err
}

// backward marks the nodes that can reach a goal, following predecessors from
// the goals.
func (sp *Space) backward() []bool {
	alive := make([]bool, len(sp.Nodes))
	var queue fifo
	for _, g := range sp.Goals {
		alive[g] = true
		queue.push(g)
	}
	for queue.len() > 0 {
		for _, p := range sp.Parents[queue.pop()] {
			if !alive[p] {
				alive[p] = true
				queue.push(p)
			}
		}
	}
	return alive
}
