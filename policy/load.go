// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package policy

import (
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is the YAML representation of a sketch.
//
//	features:
//	  - name: undelivered
//	    kind: numerical
//	    expr: Count("at-ball*-a")
//	rules:
//	  - conditions: [c_n_gt undelivered]
//	    effects: [e_n_dec undelivered]
type File struct {
	Features []FeatureSpec `yaml:"features" validate:"dive"`
	Rules    []RuleSpec    `yaml:"rules" validate:"dive"`
}

// FeatureSpec is the YAML representation of a feature.
type FeatureSpec struct {
	Name string `yaml:"name" validate:"required"`
	Kind string `yaml:"kind" validate:"required,oneof=boolean numerical"`
	Expr string `yaml:"expr" validate:"required"`
}

// RuleSpec is the YAML representation of a rule. Conditions and effects are
// given as an operator followed by the name of a feature.
type RuleSpec struct {
	Conditions []string `yaml:"conditions" validate:"dive,required"`
	Effects    []string `yaml:"effects" validate:"dive,required"`
}

var validate = validator.New()

// Compile checks a sketch file and returns the corresponding sketch, over a
// problem whose fluents are named by names.
func Compile(f *File, names []string) (*Sketch, error) {
	if err := validate.Struct(f); err != nil {
		return nil, errors.Wrap(err, "invalid sketch")
	}
	features := make([]*Feature, 0, len(f.Features))
	byname := make(map[string]int, len(f.Features))
	for _, spec := range f.Features {
		if _, ok := byname[spec.Name]; ok {
			return nil, errors.Errorf("feature %s defined twice", spec.Name)
		}
		kind, err := ParseKind(spec.Kind)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		feat, err := NewFeature(spec.Name, kind, spec.Expr)
		if err != nil {
			return nil, errors.Wrap(err, "invalid sketch")
		}
		byname[spec.Name] = len(features)
		features = append(features, feat)
	}
	rules := make([]*Rule, 0, len(f.Rules))
	for k, spec := range f.Rules {
		r := &Rule{}
		for _, src := range spec.Conditions {
			t, err := parseTerm(src, byname, features, true)
			if err != nil {
				return nil, errors.Wrapf(err, "rule %d", k+1)
			}
			r.Conditions = append(r.Conditions, t)
		}
		for _, src := range spec.Effects {
			t, err := parseTerm(src, byname, features, false)
			if err != nil {
				return nil, errors.Wrapf(err, "rule %d", k+1)
			}
			r.Effects = append(r.Effects, t)
		}
		rules = append(rules, r)
	}
	return New(names, features, rules), nil
}

// parseTerm parses a condition (or an effect) of the form "op feature".
func parseTerm(src string, byname map[string]int, features []*Feature, condition bool) (Term, error) {
	fields := strings.Fields(src)
	if len(fields) != 2 {
		return Term{}, errors.Errorf("malformed term %q", src)
	}
	op, err := ParseOp(fields[0])
	if err != nil {
		return Term{}, errors.WithStack(err)
	}
	if op.Condition() != condition {
		if condition {
			return Term{}, errors.Errorf("effect %s used as a condition", op)
		}
		return Term{}, errors.Errorf("condition %s used as an effect", op)
	}
	k, ok := byname[fields[1]]
	if !ok {
		return Term{}, errors.Errorf("unknown feature %q", fields[1])
	}
	if features[k].Kind != op.Kind() {
		return Term{}, errors.Errorf("operator %s applied to %s feature %s", op, features[k].Kind, fields[1])
	}
	return Term{Op: op, Feature: k}, nil
}

// Load reads and compiles a sketch in YAML format.
func Load(r io.Reader, names []string) (*Sketch, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	f := &File{}
	if err := dec.Decode(f); err != nil {
		return nil, errors.Wrap(err, "cannot decode sketch")
	}
	return Compile(f, names)
}

// LoadFile reads and compiles the sketch in file path.
func LoadFile(path string, names []string) (*Sketch, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open sketch")
	}
	defer file.Close()
	s, err := Load(file, names)
	if err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return s, nil
}
