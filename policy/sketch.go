// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package policy

import (
	"log/slog"

	"github.com/dalzilio/siw"
)

// Sketch is a policy sketch. It implements the siw.Policy interface. A
// Sketch is not safe for concurrent use, since it keeps track of the last
// evaluation error.
type Sketch struct {
	features []*Feature
	rules    []*Rule
	names    []string       // fluent names, by index
	index    map[string]int // fluent index, by name
	logger   *slog.Logger
	lastErr  error
}

// New returns a sketch over a problem whose fluents are named by names.
func New(names []string, features []*Feature, rules []*Rule) *Sketch {
	s := &Sketch{features: features, rules: rules, names: names, logger: slog.Default()}
	s.index = make(map[string]int, len(names))
	for k, n := range names {
		s.index[n] = k
	}
	return s
}

// SetLogger sets the logger used to report evaluation errors.
func (s *Sketch) SetLogger(l *slog.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Features returns the features of the sketch.
func (s *Sketch) Features() []*Feature {
	return s.features
}

// Rules returns the rules of the sketch.
func (s *Sketch) Rules() []*Rule {
	return s.rules
}

// LastError returns the most recent error raised when evaluating a feature,
// or nil.
func (s *Sketch) LastError() error {
	return s.lastErr
}

// Values returns the value of every feature in the state of v. Values are
// memoized in the cache of v, when there is one.
func (s *Sketch) Values(v siw.Valuation) []int {
	if res, ok := v.Cache.Lookup(v.ID); ok {
		return res
	}
	env := Env{state: v.State, names: s.names, index: s.index}
	res := make([]int, len(s.features))
	for k, f := range s.features {
		val, err := f.Eval(env)
		if err != nil {
			// we use 0 (false) for features that cannot be evaluated
			s.lastErr = err
			s.logger.Error("feature evaluation error", slog.String("feature", f.Name), slog.Any("error", err))
		}
		res[k] = val
	}
	v.Cache.Store(v.ID, res)
	return res
}

// Guards returns the rules whose conditions hold in start.
func (s *Sketch) Guards(start siw.Valuation) []siw.Rule {
	values := s.Values(start)
	res := []siw.Rule{}
	for _, r := range s.rules {
		if r.guarded(values) {
			res = append(res, r)
		}
	}
	return res
}

// Fire returns the first rule, among rules, whose effects hold between start
// and target.
func (s *Sketch) Fire(start, target siw.Valuation, rules []siw.Rule) siw.Rule {
	if len(rules) == 0 {
		return nil
	}
	from, to := s.Values(start), s.Values(target)
	for _, r := range rules {
		if rule, ok := r.(*Rule); ok && rule.effective(from, to) {
			return rule
		}
	}
	return nil
}
