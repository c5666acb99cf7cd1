// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package policy

import "fmt"

// Op is the type of the operators used in the conditions and effects of rules.
type Op int

const (
	CBPos Op = iota // Boolean feature is true
	CBNeg           // Boolean feature is false
	CNGt            // Numerical feature is positive
	CNEq            // Numerical feature is zero
	EBPos           // Boolean feature is true in the target
	EBNeg           // Boolean feature is false in the target
	EBBot           // Boolean feature is unchanged
	ENInc           // Numerical feature increases
	ENDec           // Numerical feature decreases
	ENBot           // Numerical feature is unchanged
)

var opnames = [10]string{
	CBPos: "c_b_pos",
	CBNeg: "c_b_neg",
	CNGt:  "c_n_gt",
	CNEq:  "c_n_eq",
	EBPos: "e_b_pos",
	EBNeg: "e_b_neg",
	EBBot: "e_b_bot",
	ENInc: "e_n_inc",
	ENDec: "e_n_dec",
	ENBot: "e_n_bot",
}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opnames) {
		return fmt.Sprintf("op(%d)", int(op))
	}
	return opnames[op]
}

// ParseOp returns the operator with the given name.
func ParseOp(name string) (Op, error) {
	for k, v := range opnames {
		if v == name {
			return Op(k), nil
		}
	}
	return 0, fmt.Errorf("unknown operator %q", name)
}

// Condition returns true for operators that can be used in conditions.
func (op Op) Condition() bool {
	return op <= CNEq
}

// Kind returns the kind of features the operator applies to.
func (op Op) Kind() Kind {
	switch op {
	case CBPos, CBNeg, EBPos, EBNeg, EBBot:
		return Boolean
	}
	return Numerical
}

// holds checks the operator on the value of a feature at the start of an
// episode and in a target state. The target is ignored for conditions.
func (op Op) holds(start, target int) bool {
	switch op {
	case CBPos:
		return start != 0
	case CBNeg:
		return start == 0
	case CNGt:
		return start > 0
	case CNEq:
		return start == 0
	case EBPos:
		return target != 0
	case EBNeg:
		return target == 0
	case EBBot, ENBot:
		return start == target
	case ENInc:
		return target > start
	case ENDec:
		return target < start
	}
	return false
}
