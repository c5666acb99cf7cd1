// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package policy implements policy sketches that can be used with siw.Sketch to
guide the decomposition of a planning problem into subgoals.

A sketch is a list of features and a list of rules. Features are expressions,
in the syntax of github.com/expr-lang/expr, evaluated over a state. Boolean
features return a bool and numerical features return a non-negative integer.
The following functions are available in expressions:

	Has("at-robby-a")       true if the fluent is true in the state
	Count("at-ball*-a")     number of true fluents matching a glob pattern
	All("at-ball*-b")       true if all the fluents matching the pattern are true
	Any("carry-*")          true if one of the fluents matching the pattern is true
	Size()                  number of true fluents

A rule has conditions, over the state where an episode starts, and effects,
relating the values of features between the start state and a candidate state.
Conditions and effects use the operators of dlplan:

	c_b_pos f    boolean feature f is true
	c_b_neg f    boolean feature f is false
	c_n_gt f     numerical feature f is greater than 0
	c_n_eq f     numerical feature f is equal to 0
	e_b_pos f    f becomes (or stays) true
	e_b_neg f    f becomes (or stays) false
	e_b_bot f    f keeps its value
	e_n_inc f    f increases
	e_n_dec f    f decreases
	e_n_bot f    f keeps its value

Features not mentioned in the effects of a rule can take any value.
*/
package policy
