// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/dalzilio/siw")

// Planner implements Serialized IW. A Planner can be used for several runs but
// it is not safe for concurrent use.
type Planner struct {
	model  Model
	conf   *configs
	engine *engine
}

// New returns a planner for model m. Options are used to set the
// parameters of the search, see for instance Maxwidth, Sketch or Tablekind.
func New(m Model, options ...Option) (*Planner, error) {
	if m == nil {
		return nil, errors.New("siw: nil model")
	}
	if m.Fluents() < 0 {
		return nil, errors.New("siw: negative number of fluents")
	}
	c := makeconfigs()
	for _, f := range options {
		f(c)
	}
	return &Planner{model: m, conf: c, engine: newengine(m, c)}, nil
}

// FindPlan returns a plan for model m, computed with a new Planner.
func FindPlan(ctx context.Context, m Model, options ...Option) (*Plan, error) {
	p, err := New(m, options...)
	if err != nil {
		return nil, err
	}
	return p.FindPlan(ctx)
}

func (p *Planner) goalsource() goalsource {
	if p.conf.policy != nil {
		return newsketchgoals(p.model, p.conf)
	}
	return &atomgoals{goals: slices.Clone(p.model.GoalFluents())}
}

// FindPlan searches for a plan from the initial state of the model. We
// repeatedly call IW(b) from the current root until it reaches a subgoal, then
// use this subgoal as the new root. The bound b starts at 1 (or 0 in Lookahead
// mode) for every episode and grows each time IW fails after pruning some
// states. The search stops when the root satisfies the goal of the model.
//
// When no plan is found we return a *Failure error wrapping one of ErrDeadEnd,
// ErrWidthCap, ErrRuleCycle, ErrResourceExhausted or ErrInterrupted.
func (p *Planner) FindPlan(ctx context.Context) (*Plan, error) {
	ctx, span := tracer.Start(ctx, "siw.FindPlan", trace.WithAttributes(
		attribute.Int("siw.fluents", p.model.Fluents()),
		attribute.Int("siw.max_width", p.conf.maxwidth),
		attribute.Bool("siw.sketch", p.conf.policy != nil),
		attribute.String("siw.mode", p.conf.mode.String()),
	))
	defer span.End()

	start := time.Now()
	log := p.conf.logger
	goals := p.goalsource()
	p.engine.restart()
	plan := &Plan{}
	root := p.model.Init()
	bound := goals.firstbound()
	reroot := true

	fail := func(kind error, cause error) (*Plan, error) {
		plan.Stats.Elapsed = time.Since(start)
		f := &Failure{Kind: kind, Root: root, Bound: bound, Stats: plan.Stats, cause: cause}
		span.RecordError(f)
		span.SetStatus(codes.Error, f.Error())
		log.Info("no plan found", slog.String("reason", kind.Error()), slog.Int("bound", bound), slog.Int("episodes", plan.Stats.Episodes))
		return nil, f
	}

	for !p.model.Goal(root) {
		if plan.Stats.Episodes >= p.conf.maxrules {
			return fail(ErrRuleCycle, nil)
		}
		if err := p.engine.setbound(bound); err != nil {
			if k := kindof(err); k != nil {
				return fail(k, err)
			}
			return nil, err
		}
		goals.start(root, reroot)
		out, err := p.era(ctx, root, goals, &plan.Stats)
		if err != nil {
			if k := kindof(err); k != nil {
				return fail(k, err)
			}
			return nil, err
		}
		if out.goal < 0 {
			reroot = false
			if bound > 0 && out.pruned == 0 {
				return fail(ErrDeadEnd, nil)
			}
			if bound >= p.conf.maxwidth {
				return fail(ErrWidthCap, nil)
			}
			bound++
			continue
		}
		seg := p.segment(out.goal, bound, goals)
		plan.add(seg)
		plan.Stats.segment(seg.Width)
		log.Debug("subgoal", slog.Int("episode", plan.Stats.Episodes), slog.Int("width", seg.Width),
			slog.Int("length", len(seg.Actions)), slog.String("rule", seg.Rule))
		root = p.engine.nodes.get(out.goal).State
		bound = goals.firstbound()
		reroot = true
	}

	plan.Stats.Elapsed = time.Since(start)
	span.SetAttributes(
		attribute.Int("siw.plan_length", plan.Len()),
		attribute.Int("siw.episodes", plan.Stats.Episodes),
		attribute.Int("siw.expanded", plan.Stats.Expanded),
	)
	return plan, nil
}

// era runs IW from root with the current bound of the engine and records the
// result in stats.
func (p *Planner) era(ctx context.Context, root State, goals goalsource, stats *Stats) (outcome, error) {
	ctx, span := tracer.Start(ctx, "siw.IW", trace.WithAttributes(attribute.Int("siw.bound", p.engine.bound)))
	defer span.End()
	p.conf.logger.Debug("episode", slog.Int("bound", p.engine.bound), slog.Int("root_size", root.Len()))
	out, err := p.engine.run(ctx, root, goals.accept)
	e := EraStat{
		Root:      root.Hash(),
		Bound:     p.engine.bound,
		Expanded:  out.expanded,
		Generated: out.generated,
		Pruned:    out.pruned,
		Solved:    out.goal >= 0,
	}
	if e.Solved {
		e.Length = p.engine.nodes.get(out.goal).G
	}
	stats.record(e)
	span.SetAttributes(
		attribute.Int("siw.expanded", out.expanded),
		attribute.Int("siw.generated", out.generated),
		attribute.Int("siw.pruned", out.pruned),
		attribute.Bool("siw.solved", e.Solved),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return out, err
}

// segment extracts the part of the plan leading to node id.
func (p *Planner) segment(id, bound int, goals goalsource) Segment {
	path := p.engine.nodes.path(id)
	seg := Segment{Rule: goals.fired()}
	for _, n := range path[1:] {
		seg.Actions = append(seg.Actions, n.Action)
	}
	seg.Cost = path[len(path)-1].Cost
	seg.Width = goals.width(bound, len(seg.Actions))
	return seg
}
