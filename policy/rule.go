// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package policy

import (
	"fmt"
	"strings"
)

// Term is a condition or an effect of a rule, over feature number Feature of
// a sketch.
type Term struct {
	Op      Op
	Feature int
}

func (t Term) String() string {
	return fmt.Sprintf("(:%s %d)", t.Op, t.Feature)
}

// Rule is a rule of a sketch. It implements siw.Rule.
type Rule struct {
	Conditions []Term
	Effects    []Term
}

// String returns the representation of r used by dlplan, for instance
// (:rule (:conditions (:c_n_gt 0)) (:effects (:e_n_dec 0))).
func (r *Rule) String() string {
	var sb strings.Builder
	sb.WriteString("(:rule (:conditions")
	for _, t := range r.Conditions {
		sb.WriteByte(' ')
		sb.WriteString(t.String())
	}
	sb.WriteString(") (:effects")
	for _, t := range r.Effects {
		sb.WriteByte(' ')
		sb.WriteString(t.String())
	}
	sb.WriteString("))")
	return sb.String()
}

// guarded returns true if all the conditions of r hold for the given values.
func (r *Rule) guarded(start []int) bool {
	for _, t := range r.Conditions {
		if !t.Op.holds(start[t.Feature], 0) {
			return false
		}
	}
	return true
}

// effective returns true if all the effects of r hold between the values of
// features at the start of the episode and in a target state.
func (r *Rule) effective(start, target []int) bool {
	for _, t := range r.Effects {
		if !t.Op.holds(start[t.Feature], target[t.Feature]) {
			return false
		}
	}
	return true
}
