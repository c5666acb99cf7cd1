// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package policy

import (
	"fmt"
	"path"

	"github.com/dalzilio/siw"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Kind is the type of the value of a feature.
type Kind int

const (
	Boolean   Kind = iota // Features with value true or false
	Numerical             // Features with a non-negative integer value
)

var kindnames = [2]string{
	Boolean:   "boolean",
	Numerical: "numerical",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindnames[k]
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k, v := range kindnames {
		if v == name {
			return Kind(k), nil
		}
	}
	return Boolean, fmt.Errorf("unknown feature kind %q", name)
}

// Feature is a compiled feature expression.
type Feature struct {
	Name    string
	Kind    Kind
	Expr    string
	program *vm.Program
}

// NewFeature compiles expression src. Boolean features must evaluate to a
// bool and numerical features to an int.
func NewFeature(name string, kind Kind, src string) (*Feature, error) {
	opts := []expr.Option{expr.Env(Env{})}
	if kind == Boolean {
		opts = append(opts, expr.AsBool())
	} else {
		opts = append(opts, expr.AsInt())
	}
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("feature %s: %w", name, err)
	}
	return &Feature{Name: name, Kind: kind, Expr: src, program: program}, nil
}

// Eval returns the value of the feature in env, with true encoded as 1 and
// false as 0.
func (f *Feature) Eval(env Env) (int, error) {
	out, err := expr.Run(f.program, env)
	if err != nil {
		return 0, fmt.Errorf("feature %s: %w", f.Name, err)
	}
	switch v := out.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case int:
		if v < 0 {
			return 0, fmt.Errorf("feature %s: negative value %d", f.Name, v)
		}
		return v, nil
	}
	return 0, fmt.Errorf("feature %s: unexpected result of type %T", f.Name, out)
}

// ************************************************************

// Env is the environment used to evaluate features over a state. Fluents are
// referred to by name.
type Env struct {
	state siw.State
	names []string
	index map[string]int
}

// NewEnv returns the environment of state s, where names gives the name of
// each fluent.
func NewEnv(s siw.State, names []string) Env {
	index := make(map[string]int, len(names))
	for k, n := range names {
		index[n] = k
	}
	return Env{state: s, names: names, index: index}
}

// Has returns true if the named fluent is true.
func (e Env) Has(name string) bool {
	k, ok := e.index[name]
	return ok && e.state.Has(k)
}

// Count returns the number of true fluents whose name matches pattern.
func (e Env) Count(pattern string) int {
	res := 0
	for _, f := range e.state.Fluents() {
		if f < len(e.names) && match(pattern, e.names[f]) {
			res++
		}
	}
	return res
}

// All returns true if all the fluents whose name matches pattern are true.
func (e Env) All(pattern string) bool {
	for k, n := range e.names {
		if match(pattern, n) && !e.state.Has(k) {
			return false
		}
	}
	return true
}

// Any returns true if one of the fluents whose name matches pattern is true.
func (e Env) Any(pattern string) bool {
	return e.Count(pattern) > 0
}

// Size returns the number of true fluents.
func (e Env) Size() int {
	return e.state.Len()
}

func match(pattern, name string) bool {
	ok, err := path.Match(pattern, name)
	return err == nil && ok
}
