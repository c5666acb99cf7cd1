// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import (
	"errors"
)

// _DEFAULTMAXWIDTH is the default hard cap on the width of IW searches. IW(1)
// and IW(2) are enough for most benchmarks.
const _DEFAULTMAXWIDTH int = 2

// _DEFAULTMAXRULES is the default maximal number of subgoal episodes (or rule
// applications in the case of sketches) in a single run.
const _DEFAULTMAXRULES int = 10000

// _DEFAULTTABLESIZE is the default maximal number of bits in a dense novelty
// table (about 32 MiB).
const _DEFAULTTABLESIZE int = 1 << 28

// _DEFAULTGOALCACHE is the default number of entries in the goal cache used by
// sketches. We always round it up to a prime number.
const _DEFAULTGOALCACHE int = 10000

// NoAction is the action recorded on the root node of an episode.
const NoAction Action = -1

// Failure kinds. Errors returned by FindPlan can be tested against these values
// using errors.Is.
var (
	// ErrDeadEnd is returned when a width search is exhausted without pruning
	// any state: no larger width can help from the current root.
	ErrDeadEnd = errors.New("dead end")

	// ErrWidthCap is returned when bound escalation reaches the configured
	// maximal width (see Maxwidth) without finding a subgoal.
	ErrWidthCap = errors.New("width cap exceeded")

	// ErrRuleCycle is returned when the number of subgoal episodes reaches the
	// configured limit (see Maxrules) before reaching the goal.
	ErrRuleCycle = errors.New("too many subgoal episodes")

	// ErrResourceExhausted is returned when the novelty table cannot be
	// allocated for the requested width.
	ErrResourceExhausted = errors.New("novelty table exhausted")

	// ErrInterrupted is returned when the search is stopped between two
	// expansions, either because the context is done or because the expansion
	// budget is spent.
	ErrInterrupted = errors.New("search interrupted")
)
