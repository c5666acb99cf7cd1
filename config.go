// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package siw

import (
	"log/slog"
)

// configs is used to store the values of the different parameters of a run
type configs struct {
	maxwidth      int       // hard cap on the bound of IW searches
	maxrules      int       // maximal number of subgoal episodes in a run
	maxexpansions int       // expansion budget (0 if no limit)
	tablekind     TableKind // implementation of novelty tables
	tablesize     int       // maximal number of bits in a dense table
	maxtuples     int       // maximal number of witnessed tuples in a map table (0 if no limit)
	goalcachesize int       // number of entries in the goal cache of sketches
	policy        Policy    // sketch used to detect subgoals (nil for goal atoms)
	mode          Mode      // subgoal detection policy with sketches
	logger        *slog.Logger
	observer      Sink
	seed          int64 // seed used when sampling the state space
	samplesize    int   // number of nodes in a sample (0 for none)
}

// Option is the type of configuration options, used as parameters in New,
// FindPlan and Expand.
type Option func(*configs)

func makeconfigs() *configs {
	c := &configs{}
	c.maxwidth = _DEFAULTMAXWIDTH
	c.maxrules = _DEFAULTMAXRULES
	c.tablesize = _DEFAULTTABLESIZE
	c.goalcachesize = _DEFAULTGOALCACHE
	c.logger = slog.Default()
	return c
}

// Maxwidth is a configuration option. Used as a parameter in New it
// sets the largest bound b that can be used in a call to IW(b). A search whose
// bound would need to grow past this value fails with ErrWidthCap. The default
// value is 2. Values smaller than 1 are ignored.
func Maxwidth(width int) Option {
	return func(c *configs) {
		if width >= 1 {
			c.maxwidth = width
		}
	}
}

// Maxrules is a configuration option. Used as a parameter in New it
// sets the maximal number of subgoal episodes in a run, which is also the
// maximal number of rule applications when using a sketch. Runs that need more
// episodes fail with ErrRuleCycle. The default value is 10 000.
func Maxrules(count int) Option {
	return func(c *configs) {
		if count >= 1 {
			c.maxrules = count
		}
	}
}

// Maxexpansions is a configuration option. It sets a budget on the
// total number of node expansions in a run. Search stops with ErrInterrupted
// when the budget is spent. The default value (0) means that there is no limit.
func Maxexpansions(count int) Option {
	return func(c *configs) {
		c.maxexpansions = count
	}
}

// Tablekind is a configuration option. It selects the
// implementation of novelty tables. The default is MapTable.
func Tablekind(kind TableKind) Option {
	return func(c *configs) {
		c.tablekind = kind
	}
}

// Tablesize is a configuration option. It sets the maximal number of
// bits that can be allocated by a dense novelty table (see Tablekind). A search
// that would need a larger table fails with ErrResourceExhausted. The default
// is 2^28 bits. Values less than 1 are ignored.
func Tablesize(bits int) Option {
	return func(c *configs) {
		if bits < 1 {
			return
		}
		c.tablesize = bits
	}
}

// Maxtuples is a configuration option. It sets the maximal number
// of tuples that can be witnessed in a map novelty table during one episode.
// The default value (0) means that there is no limit.
func Maxtuples(count int) Option {
	return func(c *configs) {
		c.maxtuples = count
	}
}

// Goalcachesize is a configuration option. It sets the number of
// entries in the cache used to remember negative goal tests when searching with
// a sketch. The value is rounded up to the next prime. The default value is
// 10 000.
func Goalcachesize(size int) Option {
	return func(c *configs) {
		if size > 0 {
			c.goalcachesize = size
		}
	}
}

// Sketch is a configuration option. It sets the policy sketch used
// to decide when an episode has reached a subgoal. Without a sketch, a subgoal
// is any state that achieves a goal atom not true at the root of the episode.
func Sketch(p Policy) Option {
	return func(c *configs) {
		c.policy = p
	}
}

// Usemode is a configuration option. It selects the subgoal
// detection policy used with sketches. The default is Reroot.
func Usemode(m Mode) Option {
	return func(c *configs) {
		c.mode = m
	}
}

// Logger is a configuration option. It sets the structured logger
// used to report the progress of a run. The default is slog.Default().
func Logger(l *slog.Logger) Option {
	return func(c *configs) {
		if l != nil {
			c.logger = l
		}
	}
}

// Observer is a configuration option. It registers a sink that
// receives one event per expanded and generated node, together with periodic
// samples of the generation rate.
func Observer(s Sink) Option {
	return func(c *configs) {
		c.observer = s
	}
}

// Seed is a configuration option. It sets the seed used by Expand
// when sampling nodes of the state space.
func Seed(seed int64) Option {
	return func(c *configs) {
		c.seed = seed
	}
}

// Samplesize is a configuration option. It sets the number of node
// identifiers sampled by Expand. The default value (0) means no sample.
func Samplesize(size int) Option {
	return func(c *configs) {
		c.samplesize = size
	}
}
